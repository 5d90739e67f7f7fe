package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kitchenbuddy/pantry/barcode"
	"github.com/kitchenbuddy/pantry/internal/ui"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <barcode>",
	Short: "Look up a product by barcode",
	Long: `Look up a product by barcode in the Open Food Facts database.

With --add, the product is added as an ingredient using the scanned name
and brand. Other add flags fill in the remaining fields; --brand overrides
the scanned brand.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanAdd  bool
	scanForm formFlags
)

const messageWidth = 72

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanAdd, "add", false, "Add the scanned product as an ingredient")
	scanForm.register(scanCmd)
	addFormFlagAliases(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	resolver, err := newResolver(s)
	if err != nil {
		return err
	}

	code := args[0]
	product, err := resolver.Lookup(commandContext(cmd), code)
	switch {
	case errors.Is(err, barcode.ErrInvalidCode):
		return fmt.Errorf("barcode cannot be empty")
	case errors.Is(err, barcode.ErrNetwork):
		s.logger.Error("barcode lookup failed", slog.String("code", code), slog.String("error", err.Error()))
		return fmt.Errorf("could not reach the product database; check your connection and scan again")
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	if !product.Found || product.Name == "" {
		fmt.Fprintln(out, ui.Wrap(fmt.Sprintf("No product found for barcode %s. Scan again or add it by hand with \"pantry add <name>\".", product.Code), messageWidth))
		if scanAdd {
			return fmt.Errorf("nothing to add for barcode %s", product.Code)
		}
		return nil
	}

	fmt.Fprintf(out, "Found %s\n", describeProduct(product))
	if !scanAdd {
		return nil
	}

	a, err := openStore(cmd, s)
	if err != nil {
		return err
	}
	defer a.Close()

	form, err := scanForm.form(cmd, product.Name, a.store.Now())
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("brand") {
		form.Brand = product.Brand
	}

	item, err := a.store.Add(commandContext(cmd), form)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatIngredientLine("Added", item, idHighlighter(a.store.IDIndex())))
	return nil
}

func describeProduct(product barcode.Product) string {
	if product.Brand == "" {
		return product.Name
	}
	return fmt.Sprintf("%s (%s)", product.Name, product.Brand)
}
