package ingredient

import "time"

// Ripeness records the outcome of the last ripeness check.
type Ripeness struct {
	// Status is how ripe the ingredient looked.
	Status RipenessStatus `json:"status" yaml:"status"`

	// LastChecked is when the status was recorded.
	LastChecked time.Time `json:"lastChecked" yaml:"last_checked"`
}

// Ingredient represents a single food item in the pantry.
type Ingredient struct {
	// ID is a random unique identifier assigned by Store.Add.
	ID string `json:"id" yaml:"id"`

	// Name is the display name (required).
	Name string `json:"name" yaml:"name"`

	// Brand is the product brand, if known.
	Brand string `json:"brand,omitempty" yaml:"brand,omitempty"`

	// Category is the kind of food ("" when unknown).
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`

	// Location is where the item is stored ("" when unknown).
	Location Location `json:"location,omitempty" yaml:"location,omitempty"`

	// ConfectionType is the packaging or preservation state ("" when unknown).
	ConfectionType ConfectionType `json:"confectionType,omitempty" yaml:"confection_type,omitempty"`

	// ExpirationDate is when the item expires (nil when unknown).
	ExpirationDate *time.Time `json:"expirationDate,omitempty" yaml:"expiration_date,omitempty"`

	// DateAdded is when the item was added. It never changes.
	DateAdded time.Time `json:"dateAdded" yaml:"date_added"`

	// Ripeness is the last ripeness check. Only fresh items get new checks,
	// but older records may still carry one after a confection type change.
	Ripeness *Ripeness `json:"ripeness,omitempty" yaml:"ripeness,omitempty"`

	// IsOpen reports whether the package has been opened.
	IsOpen bool `json:"isOpen" yaml:"is_open"`
}

// Form holds the user-editable fields of a new ingredient.
type Form struct {
	Name           string
	Brand          string
	Category       Category
	Location       Location
	ConfectionType ConfectionType
	ExpirationDate *time.Time
	Ripeness       *Ripeness
}

// MissingData reports whether any of the classification fields are absent.
func (item Ingredient) MissingData() bool {
	return item.Category == "" ||
		item.Location == "" ||
		item.ConfectionType == "" ||
		item.ExpirationDate == nil
}

// Clone returns a copy that shares no pointers with item.
func (item Ingredient) Clone() Ingredient {
	cloned := item
	if item.ExpirationDate != nil {
		expiration := *item.ExpirationDate
		cloned.ExpirationDate = &expiration
	}
	if item.Ripeness != nil {
		ripeness := *item.Ripeness
		cloned.Ripeness = &ripeness
	}
	return cloned
}

// TimePtr returns a pointer to the provided time.
func TimePtr(t time.Time) *time.Time {
	return &t
}
