package ingredient

import (
	"fmt"
	"time"
)

// Remaining-time labels.
const (
	LabelNoExpiration = "no expiration date"
	LabelExpired      = "expired"
	LabelToday        = "expires today"
	LabelTomorrow     = "expires tomorrow"
)

// DaysRemaining returns the number of calendar days from today until
// expiration. Both dates are truncated to midnight in today's location, so
// the time of day never changes the count.
func DaysRemaining(expiration, today time.Time) int {
	expiration = expiration.In(today.Location())
	from := civilDays(today)
	to := civilDays(expiration)
	return int(to - from)
}

// RemainingLabel describes how long until expiration, relative to today.
func RemainingLabel(expiration *time.Time, today time.Time) string {
	if expiration == nil {
		return LabelNoExpiration
	}
	days := DaysRemaining(*expiration, today)
	switch {
	case days < 0:
		return LabelExpired
	case days == 0:
		return LabelToday
	case days == 1:
		return LabelTomorrow
	default:
		return fmt.Sprintf("expires in %d days", days)
	}
}

// IsExpired reports whether the expiration date is before today.
func IsExpired(item Ingredient, today time.Time) bool {
	return item.ExpirationDate != nil && DaysRemaining(*item.ExpirationDate, today) < 0
}

// civilDays counts days since the Unix epoch for t's calendar date, using
// UTC midnight so daylight saving shifts cannot produce fractional days.
func civilDays(t time.Time) int64 {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / int64(24*time.Hour/time.Second)
}
