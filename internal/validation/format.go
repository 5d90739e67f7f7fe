package validation

import (
	"fmt"
	"strings"

	internalstrings "github.com/kitchenbuddy/pantry/internal/strings"
)

// FormatValidValues joins string-like values for help text and error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// ParseEnum normalizes value and matches it against valid. A blank value
// returns the zero value when allowEmpty is set. field names the input in
// the error, e.g. "--location" or "location".
func ParseEnum[T ~string](field, value string, valid []T, allowEmpty bool) (T, error) {
	normalized := internalstrings.NormalizeEnum(value)
	if normalized == "" && allowEmpty {
		return "", nil
	}
	for _, candidate := range valid {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q (valid: %s)", field, value, FormatValidValues(valid))
}
