package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "negative", duration: -time.Minute, want: "0s"},
		{name: "seconds", duration: 45 * time.Second, want: "45s"},
		{name: "minutes", duration: 2*time.Minute + 10*time.Second, want: "2m"},
		{name: "hours", duration: 3*time.Hour + 5*time.Minute, want: "3h"},
		{name: "days", duration: 48 * time.Hour, want: "2d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDurationShort(tc.duration)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeAgo(now.Add(-72*time.Hour), now); got != "3d ago" {
		t.Fatalf("expected 3d ago, got %s", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Fatalf("expected - for zero time, got %s", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "-" {
		t.Fatalf("expected - for nil, got %q", got)
	}
	d := time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local)
	if got := FormatDate(&d); got != "2025-03-09" {
		t.Fatalf("expected 2025-03-09, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("no product matched this barcode", 12)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Fatalf("expected lines of at most 12 columns, got %q", line)
		}
	}
	if Wrap("abc", 0) != "abc" {
		t.Fatal("expected zero width to leave text unchanged")
	}
}
