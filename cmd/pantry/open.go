package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <id>...",
	Short: "Mark ingredients as opened",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetOpen(cmd, args, true)
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <id>...",
	Short: "Mark ingredients as sealed",
	Aliases: []string{
		"seal",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetOpen(cmd, args, false)
	},
}

func init() {
	rootCmd.AddCommand(openCmd, closeCmd)
}

func runSetOpen(cmd *cobra.Command, args []string, open bool) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	verb := "Sealed"
	if open {
		verb = "Opened"
	}

	highlight := idHighlighter(a.store.IDIndex())
	for _, id := range args {
		item, err := a.store.SetOpen(commandContext(cmd), id, open)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatIngredientLine(verb, item, highlight))
	}
	return nil
}
