package ingredient

import (
	"fmt"
	"strings"

	internalstrings "github.com/kitchenbuddy/pantry/internal/strings"
)

func normalizeCategory(c Category) Category {
	return Category(internalstrings.NormalizeLowerTrimSpace(string(c)))
}

func normalizeLocation(l Location) Location {
	return Location(internalstrings.NormalizeLowerTrimSpace(string(l)))
}

func normalizeConfectionType(c ConfectionType) ConfectionType {
	return ConfectionType(internalstrings.NormalizeLowerTrimSpace(string(c)))
}

func normalizeRipenessStatus(s RipenessStatus) RipenessStatus {
	return RipenessStatus(internalstrings.NormalizeEnum(string(s)))
}

// ParseFilter converts user input into a browse filter.
func ParseFilter(value string) (Filter, error) {
	filter := Filter(internalstrings.NormalizeEnum(value))
	if filter == "" {
		return FilterRecent, nil
	}
	if !filter.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, value)
	}
	return filter, nil
}

// ParseRipenessStatus converts user input into a ripeness status.
func ParseRipenessStatus(value string) (RipenessStatus, error) {
	status := normalizeRipenessStatus(RipenessStatus(value))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRipenessStatus, value)
	}
	return status, nil
}

// normalizeIngredient trims free text and lowercases enum values in place.
func normalizeIngredient(item *Ingredient) {
	item.Name = strings.TrimSpace(item.Name)
	item.Brand = strings.TrimSpace(item.Brand)
	item.Category = normalizeCategory(item.Category)
	item.Location = normalizeLocation(item.Location)
	item.ConfectionType = normalizeConfectionType(item.ConfectionType)
	if item.Ripeness != nil {
		item.Ripeness.Status = normalizeRipenessStatus(item.Ripeness.Status)
	}
}
