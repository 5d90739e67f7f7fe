package main

import (
	"fmt"

	"github.com/kitchenbuddy/pantry/internal/ui"
	"github.com/spf13/cobra"
)

var freezeCmd = &cobra.Command{
	Use:   "freeze <id>...",
	Short: "Move ingredients to the freezer",
	Long: `Move ingredients to the freezer.

Freezing sets the confection type to frozen, the location to freezer, and
pushes the expiration date out to six months from now unless it is
already later.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFreeze,
}

func init() {
	rootCmd.AddCommand(freezeCmd)
}

func runFreeze(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	highlight := idHighlighter(a.store.IDIndex())
	for _, id := range args {
		item, err := a.store.Freeze(commandContext(cmd), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (expires %s)\n",
			formatIngredientLine("Froze", item, highlight), ui.FormatDate(item.ExpirationDate))
	}
	return nil
}
