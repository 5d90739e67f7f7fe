package main

import (
	"fmt"
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/editor"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an ingredient",
	Long: `Edit an ingredient.

Only the fields given as flags change. Pass an empty value to clear
category, location, or confection type, and --clear-expires to remove the
expiration date. Ripeness is dropped when the ingredient is not fresh.

With --editor, or with no field flags in an interactive terminal, all
fields open as TOML in $VISUAL or $EDITOR.`,
	Aliases: []string{
		"update",
	},
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editName         string
	editForm         formFlags
	editClearExpires bool
	editInEditor     bool
)

var editFieldFlags = []string{"name", "brand", "category", "location", "confection", "expires", "clear-expires", "ripeness"}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editName, "name", "", "Name")
	editForm.register(editCmd)
	editCmd.Flags().BoolVar(&editClearExpires, "clear-expires", false, "Remove the expiration date")
	editCmd.Flags().BoolVarP(&editInEditor, "editor", "e", false, "Edit all fields in $EDITOR")
	editCmd.MarkFlagsMutuallyExclusive("expires", "clear-expires")
	addFormFlagAliases(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	hasFields := hasChangedFlags(cmd, editFieldFlags...)
	useEditor := editInEditor || (!hasFields && editor.IsInteractive())
	if editInEditor && hasFields {
		return fmt.Errorf("--editor cannot be combined with field flags")
	}
	if !hasFields && !useEditor {
		return fmt.Errorf("nothing to change; pass at least one field flag or --editor")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.store.Get(args[0])
	if err != nil {
		return err
	}

	if useEditor {
		parsed, err := editor.EditIngredient(item)
		if err != nil {
			return err
		}
		parsed.Apply(&item, a.store.Now())
	} else if err := applyEdits(cmd, &item, a.store.Now()); err != nil {
		return err
	}

	// Ripeness is only tracked for fresh produce.
	if item.ConfectionType != ingredient.ConfectionFresh {
		item.Ripeness = nil
	}

	updated, err := a.store.Update(commandContext(cmd), item)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatIngredientLine("Updated", updated, idHighlighter(a.store.IDIndex())))
	return nil
}

// applyEdits copies changed flags onto item.
func applyEdits(cmd *cobra.Command, item *ingredient.Ingredient, now time.Time) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("name") {
		item.Name = editName
	}
	if flags.Changed("brand") {
		item.Brand = editForm.brand
	}
	if flags.Changed("category") {
		if item.Category, err = parseEnumFlag("category", editForm.category, ingredient.ValidCategories(), true); err != nil {
			return err
		}
	}
	if flags.Changed("location") {
		if item.Location, err = parseEnumFlag("location", editForm.location, ingredient.ValidLocations(), true); err != nil {
			return err
		}
	}
	if flags.Changed("confection") {
		if item.ConfectionType, err = parseEnumFlag("confection", editForm.confection, ingredient.ValidConfectionTypes(), true); err != nil {
			return err
		}
	}
	if flags.Changed("expires") {
		if item.ExpirationDate, err = parseDateFlag("expires", editForm.expires); err != nil {
			return err
		}
	}
	if editClearExpires {
		item.ExpirationDate = nil
	}
	if flags.Changed("ripeness") {
		status, err := parseEnumFlag("ripeness", editForm.ripeness, ingredient.ValidRipenessStatuses(), false)
		if err != nil {
			return err
		}
		item.Ripeness = &ingredient.Ripeness{Status: status, LastChecked: now}
	}
	return nil
}
