package main

import (
	"fmt"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/validation"
	"github.com/spf13/cobra"
)

var ripenessCmd = &cobra.Command{
	Use:   "ripeness <id> <status>",
	Short: "Record a ripeness check on a fresh ingredient",
	Long: `Record a ripeness check on a fresh ingredient.

Status is one of: ` + validation.FormatValidValues(ingredient.ValidRipenessStatuses()) + `.`,
	Args: cobra.ExactArgs(2),
	RunE: runRipeness,
}

func init() {
	rootCmd.AddCommand(ripenessCmd)
}

func runRipeness(cmd *cobra.Command, args []string) error {
	status, err := ingredient.ParseRipenessStatus(args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.store.CheckRipeness(commandContext(cmd), args[0], status)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n",
		formatIngredientLine("Checked", item, idHighlighter(a.store.IDIndex())),
		ingredient.RipenessLabel(item.Ripeness.Status))
	return nil
}
