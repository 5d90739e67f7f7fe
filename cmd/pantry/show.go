package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/markdown"
	"github.com/kitchenbuddy/pantry/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one ingredient in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

const showWidth = 80

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.store.Get(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return encodeJSON(out, item)
	}

	rendered := markdown.SafeRender(showWidth, 0, []byte(ingredientMarkdown(item, a.store.Now())))
	fmt.Fprintln(out, string(rendered))
	return nil
}

// ingredientMarkdown describes item as a markdown document.
func ingredientMarkdown(item ingredient.Ingredient, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.Name)

	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", label, value)
	}
	field("ID", item.ID)
	field("Brand", item.Brand)
	field("Category", string(item.Category))
	field("Location", string(item.Location))
	field("Type", string(item.ConfectionType))
	field("Expires", fmt.Sprintf("%s (%s)", ui.FormatDate(item.ExpirationDate), ingredient.RemainingLabel(item.ExpirationDate, now)))
	field("Package", openCell(item))
	if item.Ripeness != nil {
		field("Ripeness", fmt.Sprintf("%s, checked %s", ingredient.RipenessLabel(item.Ripeness.Status), ui.FormatTimeAgo(item.Ripeness.LastChecked, now)))
	}
	field("Added", fmt.Sprintf("%s (%s)", ui.FormatDate(&item.DateAdded), ui.FormatTimeAgo(item.DateAdded, now)))

	if item.MissingData() {
		b.WriteString("\nSome details are missing. Fill them in with `pantry edit`.\n")
	}
	return b.String()
}
