package ingredient

import "time"

// Freeze returns item moved to the freezer: confection type frozen, location
// freezer, and an expiration date pushed out to at least six months from now.
// A later existing expiration date is kept.
func Freeze(item Ingredient, now time.Time) Ingredient {
	frozen := item.Clone()
	frozen.ConfectionType = ConfectionFrozen
	frozen.Location = LocationFreezer

	extended := now.AddDate(0, FreezeExtensionMonths, 0)
	current := time.Unix(0, 0)
	if frozen.ExpirationDate != nil {
		current = *frozen.ExpirationDate
	}
	if current.After(extended) {
		frozen.ExpirationDate = &current
	} else {
		frozen.ExpirationDate = &extended
	}
	return frozen
}
