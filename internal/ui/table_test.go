package ui

import (
	"strings"
	"testing"
)

func withViewportWidth(t *testing.T, width int) {
	t.Helper()
	originalWidth := tableViewportWidth
	tableViewportWidth = func() int {
		return width
	}
	t.Cleanup(func() {
		tableViewportWidth = originalWidth
	})
}

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("b", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if displayWidth(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, displayWidth(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	withViewportWidth(t, 0)

	headers := []string{"COL"}
	rows := [][]string{{"Hello\nWorld\r\nAgain\tTab"}}

	got := FormatTable(headers, rows)

	expected := "COL                  \nHello World Again Tab\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	withViewportWidth(t, 0)

	got := FormatTable([]string{"ID", "NAME"}, [][]string{{"a1", "Milk"}, {"b22", "Eggs"}})

	expected := "ID   NAME\na1   Milk\nb22  Eggs\n"
	if got != expected {
		t.Fatalf("expected aligned table, got %q", got)
	}
}

func TestFormatTableShrinksToViewport(t *testing.T) {
	withViewportWidth(t, 20)

	headers := []string{"ID", "NAME"}
	rows := [][]string{{"abc", "Organic whole milk from the farm"}}

	got := FormatTable(headers, rows)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	for _, line := range lines {
		if width := displayWidth(line); width != 20 {
			t.Fatalf("expected table width 20, got %d in %q", width, line)
		}
	}
	if !strings.Contains(got, tableCellEllipsis) {
		t.Fatalf("expected truncated cell, got %q", got)
	}
}
