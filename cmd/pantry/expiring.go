package main

import (
	"fmt"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/listflags"
	"github.com/kitchenbuddy/pantry/internal/ui"
	"github.com/spf13/cobra"
)

var expiringCmd = &cobra.Command{
	Use:   "expiring",
	Short: "List ingredients that need attention",
	Long: `List ingredients that need attention.

An ingredient needs attention when it is open, ripe, or expires within the
next --days days. Frozen ingredients only show up when they are about to
expire. The soonest expiration comes first.`,
	Aliases: []string{
		"attention",
	},
	Args: cobra.NoArgs,
	RunE: runExpiring,
}

var (
	expiringDays  int
	expiringQuery string
	expiringJSON  bool
)

func init() {
	rootCmd.AddCommand(expiringCmd)
	expiringCmd.Flags().IntVarP(&expiringDays, "days", "d", ingredient.DefaultHorizonDays, fmt.Sprintf("Look-ahead window in days (presets: %v)", ingredient.HorizonPresets))
	listflags.AddQueryFlag(expiringCmd, &expiringQuery)
	listflags.AddJSONFlag(expiringCmd, &expiringJSON)
	addQueryFlagAliases(expiringCmd)
}

// attentionEntry is an ingredient with its remaining-time label.
type attentionEntry struct {
	ingredient.Ingredient
	Label string `json:"label"`
}

func runExpiring(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	days := horizonDays(a.settings, cmd, expiringDays)
	now := a.store.Now()
	items := a.store.Attention(days, expiringQuery)
	out := cmd.OutOrStdout()

	if expiringJSON {
		entries := make([]attentionEntry, 0, len(items))
		for _, item := range items {
			entries = append(entries, attentionEntry{Ingredient: item, Label: ingredient.RemainingLabel(item.ExpirationDate, now)})
		}
		return encodeJSON(out, entries)
	}

	if len(items) == 0 {
		if len(a.store.Items()) == 0 {
			fmt.Fprintln(out, emptyListMessage(0, expiringQuery))
			return nil
		}
		fmt.Fprintf(out, "Nothing needs attention in the next %s.\n", pluralDays(days))
		return nil
	}

	fmt.Fprint(out, formatExpiringTable(items, idHighlighter(a.store.IDIndex()), now))
	return nil
}

func formatExpiringTable(items []ingredient.Ingredient, highlight func(string) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "LOCATION", "STATUS", "PACKAGE", "RIPENESS"}, len(items))
	for _, item := range items {
		builder.AddRow([]string{
			highlight(item.ID),
			ui.TruncateTableCell(item.Name),
			valueOrDash(string(item.Location)),
			remainingCell(item, now),
			openCell(item),
			ripenessCell(item),
		})
	}
	return builder.String()
}

func pluralDays(days int) string {
	if days == 1 {
		return "day"
	}
	return fmt.Sprintf("%d days", days)
}
