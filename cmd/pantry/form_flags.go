package main

import (
	"time"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/validation"
	"github.com/spf13/cobra"
)

// formFlags are the ingredient fields shared by add and scan.
type formFlags struct {
	brand      string
	category   string
	location   string
	confection string
	expires    string
	ripeness   string
}

func (f *formFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.brand, "brand", "", "Brand")
	flags.StringVar(&f.category, "category", "", "Category ("+validation.FormatValidValues(ingredient.ValidCategories())+")")
	flags.StringVar(&f.location, "location", "", "Storage location ("+validation.FormatValidValues(ingredient.ValidLocations())+")")
	flags.StringVar(&f.confection, "confection", "", "Confection type ("+validation.FormatValidValues(ingredient.ValidConfectionTypes())+")")
	flags.StringVar(&f.expires, "expires", "", "Expiration date (YYYY-MM-DD)")
	flags.StringVar(&f.ripeness, "ripeness", "", "Ripeness of fresh items ("+validation.FormatValidValues(ingredient.ValidRipenessStatuses())+")")
}

// form builds an ingredient form from the flags. now stamps any ripeness.
func (f *formFlags) form(cmd *cobra.Command, name string, now time.Time) (ingredient.Form, error) {
	form := ingredient.Form{Name: name, Brand: f.brand}

	var err error
	if form.Category, err = parseEnumFlag("category", f.category, ingredient.ValidCategories(), true); err != nil {
		return ingredient.Form{}, err
	}
	if form.Location, err = parseEnumFlag("location", f.location, ingredient.ValidLocations(), true); err != nil {
		return ingredient.Form{}, err
	}
	if form.ConfectionType, err = parseEnumFlag("confection", f.confection, ingredient.ValidConfectionTypes(), true); err != nil {
		return ingredient.Form{}, err
	}
	if cmd.Flags().Changed("expires") {
		if form.ExpirationDate, err = parseDateFlag("expires", f.expires); err != nil {
			return ingredient.Form{}, err
		}
	}
	if cmd.Flags().Changed("ripeness") {
		status, err := parseEnumFlag("ripeness", f.ripeness, ingredient.ValidRipenessStatuses(), false)
		if err != nil {
			return ingredient.Form{}, err
		}
		form.Ripeness = &ingredient.Ripeness{Status: status, LastChecked: now}
	}
	return form, nil
}
