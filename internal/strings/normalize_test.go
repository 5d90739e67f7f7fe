package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
		{
			name:  "single token",
			input: "tomato",
			want:  "tomato",
		},
		{
			name:  "collapses spaces",
			input: "cherry   tomato    vine",
			want:  "cherry tomato vine",
		},
		{
			name:  "collapses newlines",
			input: "one\n\n two\tthree",
			want:  "one two three",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeWhitespace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already lower", input: "fridge", want: "fridge"},
		{name: "mixed case", input: "FrIdGe", want: "fridge"},
		{name: "padded", input: "  Pantry \n", want: "pantry"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeLowerTrimSpace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeEnum(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "underscored", input: "too_ripe", want: "too_ripe"},
		{name: "dashed", input: "missing-data", want: "missing_data"},
		{name: "spaced", input: " Too  Ripe ", want: "too_ripe"},
		{name: "empty", input: "  ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeEnum(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(" \t\n") {
		t.Fatal("expected whitespace to be blank")
	}
	if IsBlank(" x ") {
		t.Fatal("expected text not to be blank")
	}
}

func TestNormalizeNewlines(t *testing.T) {
	got := NormalizeNewlines("a\r\nb\rc\n")
	if got != "a\nb\nc\n" {
		t.Fatalf("expected LF newlines, got %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	got := TrimTrailingNewlines("body\r\n\n")
	if got != "body" {
		t.Fatalf("expected trailing newlines removed, got %q", got)
	}
}

func TestIndentBlock(t *testing.T) {
	got := IndentBlock("one\ntwo", 2)
	if got != "  one\n  two" {
		t.Fatalf("expected indented block, got %q", got)
	}
	if got := IndentBlock("one", 0); got != "one" {
		t.Fatalf("expected unchanged block, got %q", got)
	}
}
