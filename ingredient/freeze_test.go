package ingredient

import (
	"testing"
	"time"
)

func TestFreezeExtendsShortExpiration(t *testing.T) {
	item := Ingredient{
		Name:           "Chicken",
		Location:       LocationFridge,
		ConfectionType: ConfectionFresh,
		ExpirationDate: TimePtr(testNow.AddDate(0, 1, 0)),
	}

	frozen := Freeze(item, testNow)

	want := testNow.AddDate(0, 6, 0)
	if !frozen.ExpirationDate.Equal(want) {
		t.Fatalf("expected expiration %v, got %v", want, frozen.ExpirationDate)
	}
	if frozen.ConfectionType != ConfectionFrozen {
		t.Fatalf("expected confection type frozen, got %q", frozen.ConfectionType)
	}
	if frozen.Location != LocationFreezer {
		t.Fatalf("expected location freezer, got %q", frozen.Location)
	}
}

func TestFreezeKeepsLaterExpiration(t *testing.T) {
	later := testNow.AddDate(0, 8, 0)
	item := Ingredient{Name: "Peas", ExpirationDate: TimePtr(later)}

	frozen := Freeze(item, testNow)

	if !frozen.ExpirationDate.Equal(later) {
		t.Fatalf("expected expiration %v, got %v", later, frozen.ExpirationDate)
	}
}

func TestFreezeWithoutExpiration(t *testing.T) {
	frozen := Freeze(Ingredient{Name: "Bread"}, testNow)

	want := testNow.AddDate(0, 6, 0)
	if frozen.ExpirationDate == nil || !frozen.ExpirationDate.Equal(want) {
		t.Fatalf("expected expiration %v, got %v", want, frozen.ExpirationDate)
	}
}

func TestFreezeDoesNotModifyInput(t *testing.T) {
	original := testNow.AddDate(0, 0, 3)
	item := Ingredient{Name: "Fish", Location: LocationFridge, ExpirationDate: TimePtr(original)}

	Freeze(item, testNow)

	if item.Location != LocationFridge {
		t.Fatalf("expected input location unchanged, got %q", item.Location)
	}
	if !item.ExpirationDate.Equal(original) {
		t.Fatalf("expected input expiration unchanged, got %v", item.ExpirationDate)
	}
}

func TestFreezeExtensionEndOfMonth(t *testing.T) {
	now := time.Date(2025, 8, 31, 9, 0, 0, 0, time.UTC)

	frozen := Freeze(Ingredient{Name: "Berries"}, now)

	// AddDate normalizes Feb 31 to Mar 3.
	want := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	if !frozen.ExpirationDate.Equal(want) {
		t.Fatalf("expected expiration %v, got %v", want, frozen.ExpirationDate)
	}
}
