package ui

import "testing"

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"abc123": 4},
			id:     "ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "ABC123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	lengths := map[string]int{"abc123": 2}

	if got := ShortID(lengths, "abc123"); got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
	if got := ShortID(lengths, "zzz"); got != "zzz" {
		t.Fatalf("expected unknown id unchanged, got %q", got)
	}
}

func TestHighlightIDWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightID("abc123", 2); got != "abc123" {
		t.Fatalf("expected plain id, got %q", got)
	}
}
