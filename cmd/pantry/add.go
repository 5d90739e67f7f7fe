package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an ingredient",
	Long: `Add an ingredient.

The name is required. Ripeness is only recorded for fresh ingredients.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var addForm formFlags

func init() {
	rootCmd.AddCommand(addCmd)
	addForm.register(addCmd)
	addFormFlagAliases(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	form, err := addForm.form(cmd, strings.Join(args, " "), a.store.Now())
	if err != nil {
		return err
	}

	item, err := a.store.Add(commandContext(cmd), form)
	if err != nil {
		return err
	}

	highlight := idHighlighter(a.store.IDIndex())
	fmt.Fprintln(cmd.OutOrStdout(), formatIngredientLine("Added", item, highlight))
	return nil
}
