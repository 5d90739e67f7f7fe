// Package listflags registers the flags shared by list commands.
package listflags

import "github.com/spf13/cobra"

// AddQueryFlag adds the shared --query name filter to list commands.
func AddQueryFlag(cmd *cobra.Command, target *string) {
	if target == nil {
		cmd.Flags().String("query", "", "Only show ingredients whose name contains this text")
		return
	}

	cmd.Flags().StringVar(target, "query", "", "Only show ingredients whose name contains this text")
}

// AddJSONFlag adds the shared --json output switch to list commands.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output as JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}
