package ingredient

import (
	"testing"
	"time"
)

func TestRemainingLabel(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		expiration *time.Time
		want       string
	}{
		{name: "none", expiration: nil, want: LabelNoExpiration},
		{name: "long ago", expiration: TimePtr(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)), want: LabelExpired},
		{name: "yesterday late", expiration: TimePtr(time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)), want: LabelExpired},
		{name: "today earlier", expiration: TimePtr(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)), want: LabelToday},
		{name: "today later", expiration: TimePtr(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)), want: LabelToday},
		{name: "tomorrow early", expiration: TimePtr(time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)), want: LabelTomorrow},
		{name: "in two days", expiration: TimePtr(time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)), want: "expires in 2 days"},
		{name: "in thirty days", expiration: TimePtr(time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)), want: "expires in 30 days"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemainingLabel(tc.expiration, today); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDaysRemainingAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	// Clocks spring forward on 2025-03-09 in New York.
	today := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)
	expiration := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	if got := DaysRemaining(expiration, today); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
}

func TestDaysRemainingUsesTodaysLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	today := time.Date(2025, 3, 10, 20, 0, 0, 0, loc)
	// 02:00 UTC on the 11th is still the 10th at UTC-5.
	expiration := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)

	if got := DaysRemaining(expiration, today); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestIsExpired(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if IsExpired(Ingredient{}, today) {
		t.Fatal("expected undated item not to be expired")
	}
	if !IsExpired(Ingredient{ExpirationDate: daysFrom(today, -1)}, today) {
		t.Fatal("expected yesterday to be expired")
	}
	if IsExpired(Ingredient{ExpirationDate: TimePtr(today.Add(-time.Hour))}, today) {
		t.Fatal("expected earlier today not to be expired")
	}
}
