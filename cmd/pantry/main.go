// Package main implements the pantry CLI tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/kitchenbuddy/pantry/internal/validation"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Track what is in the kitchen and what needs eating soon",
	Long: `Track what is in the kitchen and what needs eating soon.

Ingredients are recorded with a category, storage location, packaging
type, ripeness, and expiration date. "pantry expiring" lists what needs
attention; "pantry browse" offers the other views.`,
	SilenceUsage: true,
}

var (
	rootStoreBackend string
	rootDataDir      string
	rootLogLevel     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootStoreBackend, "store", "", "Storage backend ("+validation.FormatValidValues(storeBackends())+")")
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Directory holding pantry data (default ~/.local/share/pantry)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
}
