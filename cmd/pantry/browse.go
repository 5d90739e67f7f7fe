package main

import (
	"fmt"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/listflags"
	"github.com/kitchenbuddy/pantry/internal/ui"
	"github.com/kitchenbuddy/pantry/internal/validation"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List ingredients",
	Long: `List ingredients.

Filters:
  recent          most recently added first (default)
  missing_data    ingredients lacking category, location, type, or expiration
  by_location     sorted by storage location
  by_category     sorted by category
  check_ripeness  ripeness last checked more than three days ago`,
	Aliases: []string{
		"list",
		"ls",
	},
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

var (
	browseFilter string
	browseQuery  string
	browseJSON   bool
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseFilter, "filter", "f", string(ingredient.FilterRecent), "View to show ("+validation.FormatValidValues(ingredient.ValidFilters())+")")
	listflags.AddQueryFlag(browseCmd, &browseQuery)
	listflags.AddJSONFlag(browseCmd, &browseJSON)
	addQueryFlagAliases(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	filter, err := ingredient.ParseFilter(browseFilter)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	items := a.store.Browse(filter, browseQuery)
	out := cmd.OutOrStdout()

	if browseJSON {
		return encodeJSON(out, items)
	}

	if len(items) == 0 {
		fmt.Fprintln(out, emptyListMessage(len(a.store.Items()), browseQuery))
		return nil
	}

	fmt.Fprint(out, formatBrowseTable(items, idHighlighter(a.store.IDIndex()), a.store.Now()))
	return nil
}

func formatBrowseTable(items []ingredient.Ingredient, highlight func(string) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "BRAND", "CATEGORY", "LOCATION", "TYPE", "EXPIRES", "RIPENESS", "ADDED"}, len(items))
	for _, item := range items {
		builder.AddRow([]string{
			highlight(item.ID),
			ui.TruncateTableCell(item.Name),
			valueOrDash(item.Brand),
			valueOrDash(string(item.Category)),
			valueOrDash(string(item.Location)),
			valueOrDash(string(item.ConfectionType)),
			ui.FormatDate(item.ExpirationDate),
			ripenessCell(item),
			ui.FormatTimeAgo(item.DateAdded, now),
		})
	}
	return builder.String()
}
