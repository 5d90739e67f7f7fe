package ingredient

import (
	"sort"
	"strings"
	"time"
)

// Browse returns the ingredients shown by the given browse filter, narrowed
// to names containing query. The input slice is never modified.
//
// Only FilterCheckRipeness depends on now.
func Browse(items []Ingredient, filter Filter, query string, now time.Time) []Ingredient {
	var result []Ingredient
	switch filter {
	case FilterMissingData:
		result = keep(items, Ingredient.MissingData)
	case FilterByLocation:
		result = sortedCopy(items, func(a, b Ingredient) bool {
			return string(a.Location) < string(b.Location)
		})
	case FilterByCategory:
		result = sortedCopy(items, func(a, b Ingredient) bool {
			return string(a.Category) < string(b.Category)
		})
	case FilterCheckRipeness:
		cutoff := now.AddDate(0, 0, -RipenessCheckInterval)
		result = keep(items, func(item Ingredient) bool {
			return NeedsRipenessCheck(item, cutoff)
		})
	default:
		result = sortedCopy(items, func(a, b Ingredient) bool {
			return a.DateAdded.After(b.DateAdded)
		})
	}

	return filterByName(result, query)
}

// NeedsRipenessCheck reports whether item carries a ripeness check older
// than cutoff. The confection type is deliberately not consulted, so a stale
// check left on an item that is no longer fresh still counts.
func NeedsRipenessCheck(item Ingredient, cutoff time.Time) bool {
	return item.Ripeness != nil && item.Ripeness.LastChecked.Before(cutoff)
}

// Attention returns the ingredients that need the user's attention within
// horizonDays of now, soonest expiration first, narrowed to names containing
// query. Items without an expiration date sort last.
func Attention(items []Ingredient, horizonDays int, query string, now time.Time) []Ingredient {
	if horizonDays < 0 {
		horizonDays = 0
	}
	limit := now.AddDate(0, 0, horizonDays)

	result := keep(items, func(item Ingredient) bool {
		return NeedsAttention(item, now, limit)
	})
	sort.SliceStable(result, func(i, j int) bool {
		return expiresBefore(result[i], result[j])
	})

	return filterByName(result, query)
}

// NeedsAttention reports whether item belongs on the attention list for the
// window [now, limit]. Frozen items only count when they are about to
// expire; open or ripe signals are ignored for them.
func NeedsAttention(item Ingredient, now, limit time.Time) bool {
	if item.ConfectionType == ConfectionFrozen {
		return ExpiresWithin(item, now, limit)
	}
	return item.IsOpen || ExpiresWithin(item, now, limit) || IsRipe(item)
}

// ExpiresWithin reports whether the expiration date falls in [now, limit].
func ExpiresWithin(item Ingredient, now, limit time.Time) bool {
	if item.ExpirationDate == nil {
		return false
	}
	expiration := *item.ExpirationDate
	return !expiration.Before(now) && !expiration.After(limit)
}

// IsRipe reports whether the last ripeness check found the item ripe.
func IsRipe(item Ingredient) bool {
	return item.Ripeness != nil && item.Ripeness.Status == RipenessRipe
}

// expiresBefore orders by expiration date with missing dates last.
func expiresBefore(a, b Ingredient) bool {
	switch {
	case a.ExpirationDate == nil:
		return false
	case b.ExpirationDate == nil:
		return true
	default:
		return a.ExpirationDate.Before(*b.ExpirationDate)
	}
}

// filterByName keeps items whose name contains query, ignoring case.
// A blank query keeps everything.
func filterByName(items []Ingredient, query string) []Ingredient {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	return keep(items, func(item Ingredient) bool {
		return strings.Contains(strings.ToLower(item.Name), query)
	})
}

func keep(items []Ingredient, pred func(Ingredient) bool) []Ingredient {
	result := make([]Ingredient, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

func sortedCopy(items []Ingredient, less func(a, b Ingredient) bool) []Ingredient {
	result := make([]Ingredient, len(items))
	copy(result, items)
	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}
