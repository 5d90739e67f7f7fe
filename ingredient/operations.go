package ingredient

import (
	"context"
	"fmt"
)

// Add creates a new ingredient from form data, assigning its ID and
// DateAdded, and persists the collection.
func (s *Store) Add(ctx context.Context, form Form) (Ingredient, error) {
	item := Ingredient{
		Name:           form.Name,
		Brand:          form.Brand,
		Category:       form.Category,
		Location:       form.Location,
		ConfectionType: form.ConfectionType,
		ExpirationDate: form.ExpirationDate,
		Ripeness:       form.Ripeness,
	}
	item = item.Clone()
	normalizeIngredient(&item)

	// Ripeness is only tracked for fresh produce.
	if item.ConfectionType != ConfectionFresh {
		item.Ripeness = nil
	}

	if err := ValidateIngredient(&item); err != nil {
		return Ingredient{}, err
	}

	item.ID = s.newID()
	item.DateAdded = s.now()
	item.IsOpen = false

	s.items = append(s.items, item)
	s.save(ctx)

	return item.Clone(), nil
}

// Update replaces the stored ingredient that has item's ID. The stored ID
// and DateAdded are kept regardless of what item carries.
func (s *Store) Update(ctx context.Context, item Ingredient) (Ingredient, error) {
	i, ok := s.indexOf(item.ID)
	if !ok {
		return Ingredient{}, fmt.Errorf("%w: %s", ErrIngredientNotFound, item.ID)
	}

	updated := item.Clone()
	normalizeIngredient(&updated)
	if err := ValidateIngredient(&updated); err != nil {
		return Ingredient{}, fmt.Errorf("validate ingredient %s: %w", item.ID, err)
	}

	updated.ID = s.items[i].ID
	updated.DateAdded = s.items[i].DateAdded
	s.items[i] = updated
	s.save(ctx)

	return updated.Clone(), nil
}

// Get returns the ingredient matching an ID or unique ID prefix.
func (s *Store) Get(idOrPrefix string) (Ingredient, error) {
	i, err := s.resolve(idOrPrefix)
	if err != nil {
		return Ingredient{}, err
	}
	return s.items[i].Clone(), nil
}

// SetOpen marks an ingredient as opened or sealed.
func (s *Store) SetOpen(ctx context.Context, idOrPrefix string, open bool) (Ingredient, error) {
	item, err := s.Get(idOrPrefix)
	if err != nil {
		return Ingredient{}, err
	}
	item.IsOpen = open
	return s.Update(ctx, item)
}

// Freeze moves an ingredient to the freezer, extends its expiration date,
// and drops any ripeness check.
func (s *Store) Freeze(ctx context.Context, idOrPrefix string) (Ingredient, error) {
	item, err := s.Get(idOrPrefix)
	if err != nil {
		return Ingredient{}, err
	}
	if item.ConfectionType == ConfectionFrozen {
		return Ingredient{}, fmt.Errorf("%w: %s", ErrAlreadyFrozen, item.ID)
	}
	frozen := Freeze(item, s.now())
	// Ripeness is only tracked for fresh produce.
	frozen.Ripeness = nil
	return s.Update(ctx, frozen)
}

// CheckRipeness records a ripeness check made now on a fresh ingredient.
func (s *Store) CheckRipeness(ctx context.Context, idOrPrefix string, status RipenessStatus) (Ingredient, error) {
	status = normalizeRipenessStatus(status)
	if !status.IsValid() {
		return Ingredient{}, fmt.Errorf("%w: %q", ErrInvalidRipenessStatus, status)
	}

	item, err := s.Get(idOrPrefix)
	if err != nil {
		return Ingredient{}, err
	}
	if item.ConfectionType != ConfectionFresh {
		return Ingredient{}, fmt.Errorf("%w: %s is %s", ErrRipenessRequiresFresh, item.Name, confectionLabel(item.ConfectionType))
	}

	item.Ripeness = &Ripeness{Status: status, LastChecked: s.now()}
	return s.Update(ctx, item)
}

// Browse runs the browse classifier over the collection.
func (s *Store) Browse(filter Filter, query string) []Ingredient {
	return Browse(s.Items(), filter, query, s.now())
}

// Attention runs the attention classifier over the collection.
func (s *Store) Attention(horizonDays int, query string) []Ingredient {
	return Attention(s.Items(), horizonDays, query, s.now())
}

func confectionLabel(c ConfectionType) string {
	if c == "" {
		return "unset"
	}
	return string(c)
}
