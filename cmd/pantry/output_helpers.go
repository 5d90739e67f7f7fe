package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/ui"
)

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return ui.Muted("-")
	}
	return value
}

func ripenessCell(item ingredient.Ingredient) string {
	if item.Ripeness == nil {
		return ui.Muted("-")
	}
	return ingredient.RipenessLabel(item.Ripeness.Status)
}

func openCell(item ingredient.Ingredient) string {
	if item.IsOpen {
		return "open"
	}
	return "sealed"
}

// formatIngredientLine renders the one-line summary printed after a mutation.
func formatIngredientLine(verb string, item ingredient.Ingredient, highlight func(string) string) string {
	return fmt.Sprintf("%s %s %s", verb, highlight(item.ID), item.Name)
}

// idHighlighter returns a function that highlights each ID's unique prefix.
func idHighlighter(index ingredient.IDIndex) func(string) string {
	lengths := index.PrefixLengths()
	return func(id string) string {
		return ui.HighlightID(id, ui.PrefixLength(lengths, id))
	}
}

func emptyListMessage(total int, query string) string {
	if total == 0 {
		return "No ingredients yet. Add one with \"pantry add <name>\"."
	}
	query = strings.TrimSpace(query)
	if query != "" {
		return fmt.Sprintf("No ingredients match %q.", query)
	}
	return "No ingredients found."
}

// soonDays is how close an expiration must be to be highlighted as soon.
const soonDays = 3

func remainingSeverity(item ingredient.Ingredient, today time.Time) ui.Severity {
	if item.ExpirationDate == nil {
		return ui.SeverityNone
	}
	if ingredient.IsExpired(item, today) {
		return ui.SeverityExpired
	}
	switch days := ingredient.DaysRemaining(*item.ExpirationDate, today); {
	case days == 0:
		return ui.SeverityUrgent
	case days <= soonDays:
		return ui.SeveritySoon
	default:
		return ui.SeverityNone
	}
}

func remainingCell(item ingredient.Ingredient, today time.Time) string {
	return ui.Label(ingredient.RemainingLabel(item.ExpirationDate, today), remainingSeverity(item, today))
}
