package main

import (
	"strings"
	"testing"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
)

func TestParseEnumFlag(t *testing.T) {
	got, err := parseEnumFlag("location", " Fridge ", ingredient.ValidLocations(), true)
	if err != nil || got != ingredient.LocationFridge {
		t.Fatalf("expected fridge, got %q (%v)", got, err)
	}

	got, err = parseEnumFlag("location", "", ingredient.ValidLocations(), true)
	if err != nil || got != "" {
		t.Fatalf("expected empty value to clear, got %q (%v)", got, err)
	}

	status, err := parseEnumFlag("ripeness", "too ripe", ingredient.ValidRipenessStatuses(), false)
	if err != nil || status != ingredient.RipenessTooRipe {
		t.Fatalf("expected too_ripe, got %q (%v)", status, err)
	}

	_, err = parseEnumFlag("ripeness", "", ingredient.ValidRipenessStatuses(), false)
	if err == nil {
		t.Fatal("expected empty ripeness to be rejected")
	}

	_, err = parseEnumFlag("location", "garage", ingredient.ValidLocations(), true)
	if err == nil || !strings.Contains(err.Error(), "fridge, freezer, pantry, other") {
		t.Fatalf("expected error listing valid values, got %v", err)
	}
}

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("expires", "2025-03-09")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := parseDateFlag("expires", "next week"); err == nil {
		t.Fatal("expected invalid date to be rejected")
	}
	if _, err := parseDateFlag("expires", " "); err == nil {
		t.Fatal("expected blank date to be rejected")
	}
}
