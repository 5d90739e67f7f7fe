package ingredient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalid is the kind shared by every validation failure.
	ErrInvalid = errors.New("invalid ingredient")

	// ErrEmptyName is returned when an ingredient name is empty.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrInvalid)

	// ErrInvalidCategory is returned when an unknown category is provided.
	ErrInvalidCategory = fmt.Errorf("%w: invalid category", ErrInvalid)

	// ErrInvalidLocation is returned when an unknown location is provided.
	ErrInvalidLocation = fmt.Errorf("%w: invalid location", ErrInvalid)

	// ErrInvalidConfectionType is returned when an unknown confection type is provided.
	ErrInvalidConfectionType = fmt.Errorf("%w: invalid confection type", ErrInvalid)

	// ErrInvalidRipenessStatus is returned when an unknown ripeness status is provided.
	ErrInvalidRipenessStatus = fmt.Errorf("%w: invalid ripeness status", ErrInvalid)

	// ErrRipenessRequiresFresh is returned when a ripeness check targets a non-fresh ingredient.
	ErrRipenessRequiresFresh = fmt.Errorf("%w: ripeness can only be checked on fresh ingredients", ErrInvalid)

	// ErrIngredientNotFound is returned when no ingredient has the given ID.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple ingredients.
	ErrAmbiguousIDPrefix = errors.New("ambiguous ingredient ID prefix")

	// ErrInvalidFilter is returned when an unknown browse filter is provided.
	ErrInvalidFilter = errors.New("invalid browse filter")

	// ErrAlreadyFrozen is returned when freezing an ingredient that is already frozen.
	ErrAlreadyFrozen = errors.New("ingredient is already frozen")
)

// ValidateName checks that the name is not blank.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateRipeness checks the ripeness status when one is recorded.
func ValidateRipeness(r *Ripeness) error {
	if r == nil {
		return nil
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRipenessStatus, r.Status)
	}
	return nil
}

// ValidateIngredient checks every user-editable field of an ingredient.
func ValidateIngredient(item *Ingredient) error {
	if err := ValidateName(item.Name); err != nil {
		return err
	}
	if !item.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, item.Category)
	}
	if !item.Location.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLocation, item.Location)
	}
	if !item.ConfectionType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidConfectionType, item.ConfectionType)
	}
	return ValidateRipeness(item.Ripeness)
}
