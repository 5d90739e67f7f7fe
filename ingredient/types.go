// Package ingredient implements the pantry's record model and the
// classification engine that decides which ingredients need attention.
//
// Ingredients are kept in a single collection owned by a Store, which is
// persisted as one blob in a key-value store.
//
// The public API mirrors the CLI commands:
//   - Add, Update, SetOpen, Freeze, CheckRipeness for record mutation
//   - Get, Items for lookup
//   - Browse, Attention for the two classified views
package ingredient

// Category is the kind of food an ingredient is.
type Category string

const (
	CategoryFruit     Category = "fruit"
	CategoryVegetable Category = "vegetable"
	CategoryDairy     Category = "dairy"
	CategoryFish      Category = "fish"
	CategoryMeat      Category = "meat"
	CategoryLiquid    Category = "liquid"
	CategoryOther     Category = "other"
)

// ValidCategories returns all valid category values.
func ValidCategories() []Category {
	return []Category{CategoryFruit, CategoryVegetable, CategoryDairy, CategoryFish, CategoryMeat, CategoryLiquid, CategoryOther}
}

// IsValid returns true if the category is absent or a known value.
func (c Category) IsValid() bool {
	if c == "" {
		return true
	}
	for _, valid := range ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// Location is where an ingredient is stored.
type Location string

const (
	LocationFridge  Location = "fridge"
	LocationFreezer Location = "freezer"
	LocationPantry  Location = "pantry"
	LocationOther   Location = "other"
)

// ValidLocations returns all valid location values.
func ValidLocations() []Location {
	return []Location{LocationFridge, LocationFreezer, LocationPantry, LocationOther}
}

// IsValid returns true if the location is absent or a known value.
func (l Location) IsValid() bool {
	if l == "" {
		return true
	}
	for _, valid := range ValidLocations() {
		if l == valid {
			return true
		}
	}
	return false
}

// ConfectionType is the packaging or preservation state of an ingredient.
type ConfectionType string

const (
	ConfectionFresh  ConfectionType = "fresh"
	ConfectionCanned ConfectionType = "canned"
	ConfectionFrozen ConfectionType = "frozen"
	ConfectionCured  ConfectionType = "cured"
	ConfectionOther  ConfectionType = "other"
)

// ValidConfectionTypes returns all valid confection type values.
func ValidConfectionTypes() []ConfectionType {
	return []ConfectionType{ConfectionFresh, ConfectionCanned, ConfectionFrozen, ConfectionCured, ConfectionOther}
}

// IsValid returns true if the confection type is absent or a known value.
func (c ConfectionType) IsValid() bool {
	if c == "" {
		return true
	}
	for _, valid := range ValidConfectionTypes() {
		if c == valid {
			return true
		}
	}
	return false
}

// RipenessStatus describes how ripe a fresh ingredient was at its last check.
type RipenessStatus string

const (
	RipenessGreen    RipenessStatus = "green"
	RipenessRipe     RipenessStatus = "ripe"
	RipenessAdvanced RipenessStatus = "advanced"
	RipenessTooRipe  RipenessStatus = "too_ripe"
)

// ValidRipenessStatuses returns all valid ripeness values.
func ValidRipenessStatuses() []RipenessStatus {
	return []RipenessStatus{RipenessGreen, RipenessRipe, RipenessAdvanced, RipenessTooRipe}
}

// IsValid returns true if the status is a known value. Unlike the other
// enums, a ripeness status is never optional once a Ripeness is recorded.
func (s RipenessStatus) IsValid() bool {
	for _, valid := range ValidRipenessStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// RipenessLabel returns a human-readable name for the ripeness status.
func RipenessLabel(s RipenessStatus) string {
	switch s {
	case RipenessGreen:
		return "green"
	case RipenessRipe:
		return "ripe"
	case RipenessAdvanced:
		return "advanced"
	case RipenessTooRipe:
		return "too ripe"
	default:
		return "unknown"
	}
}

// Filter selects the browse view.
type Filter string

const (
	// FilterRecent lists the most recently added ingredients first.
	FilterRecent Filter = "recent"

	// FilterMissingData keeps ingredients lacking category, location,
	// confection type, or expiration date.
	FilterMissingData Filter = "missing_data"

	// FilterByLocation sorts by storage location.
	FilterByLocation Filter = "by_location"

	// FilterByCategory sorts by category.
	FilterByCategory Filter = "by_category"

	// FilterCheckRipeness keeps ingredients whose ripeness check is overdue.
	FilterCheckRipeness Filter = "check_ripeness"
)

// ValidFilters returns all valid browse filters.
func ValidFilters() []Filter {
	return []Filter{FilterRecent, FilterMissingData, FilterByLocation, FilterByCategory, FilterCheckRipeness}
}

// IsValid returns true if the filter is a known value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// DefaultHorizonDays is the attention window used when none is given.
const DefaultHorizonDays = 7

// HorizonPresets are the attention windows offered as shortcuts.
var HorizonPresets = []int{3, 7, 30}

// RipenessCheckInterval is how many days may pass between ripeness checks
// before an ingredient shows up under FilterCheckRipeness.
const RipenessCheckInterval = 3

// FreezeExtensionMonths is how far freezing pushes the expiration date out.
const FreezeExtensionMonths = 6
