package main

import (
	"fmt"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	internalstrings "github.com/kitchenbuddy/pantry/internal/strings"
	"github.com/kitchenbuddy/pantry/internal/validation"
	"github.com/spf13/cobra"
)

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

// parseEnumFlag validates a flag value against the allowed values. An empty
// value is returned as-is when allowEmpty is set, clearing the field.
func parseEnumFlag[T ~string](flag, value string, valid []T, allowEmpty bool) (T, error) {
	return validation.ParseEnum("--"+flag, value, valid, allowEmpty)
}

// parseDateFlag parses a YYYY-MM-DD or RFC 3339 expiration date.
func parseDateFlag(flag, value string) (*time.Time, error) {
	if internalstrings.IsBlank(value) {
		return nil, fmt.Errorf("--%s requires a date (YYYY-MM-DD)", flag)
	}
	t, err := ingredient.ParseTime(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return &t, nil
}
