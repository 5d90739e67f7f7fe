package editor

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kitchenbuddy/pantry/ingredient"
	internalstrings "github.com/kitchenbuddy/pantry/internal/strings"
	"github.com/kitchenbuddy/pantry/internal/validation"
)

// IngredientData is the editable view of an ingredient.
type IngredientData struct {
	ID         string
	Name       string
	Brand      string
	Category   string
	Location   string
	Confection string
	// Expires is a local YYYY-MM-DD date, or empty.
	Expires  string
	Ripeness string
}

// DataFromIngredient creates IngredientData from an existing ingredient.
func DataFromIngredient(item ingredient.Ingredient) IngredientData {
	data := IngredientData{
		ID:         item.ID,
		Name:       item.Name,
		Brand:      item.Brand,
		Category:   string(item.Category),
		Location:   string(item.Location),
		Confection: string(item.ConfectionType),
	}
	if item.ExpirationDate != nil {
		data.Expires = item.ExpirationDate.Local().Format(time.DateOnly)
	}
	if item.Ripeness != nil {
		data.Ripeness = string(item.Ripeness.Status)
	}
	return data
}

var ingredientTemplate = template.Must(template.New("ingredient").Funcs(template.FuncMap{
	"categories":  func() string { return validation.FormatValidValues(ingredient.ValidCategories()) },
	"locations":   func() string { return validation.FormatValidValues(ingredient.ValidLocations()) },
	"confections": func() string { return validation.FormatValidValues(ingredient.ValidConfectionTypes()) },
	"statuses":    func() string { return validation.FormatValidValues(ingredient.ValidRipenessStatuses()) },
}).Parse(`# Editing ingredient {{ .ID }}. Leave a field empty to clear it.
name = {{ printf "%q" .Name }}
brand = {{ printf "%q" .Brand }}
category = {{ printf "%q" .Category }} # {{ categories }}
location = {{ printf "%q" .Location }} # {{ locations }}
confection = {{ printf "%q" .Confection }} # {{ confections }}
expires = {{ printf "%q" .Expires }} # YYYY-MM-DD
ripeness = {{ printf "%q" .Ripeness }} # {{ statuses }} (fresh only)
`))

// RenderIngredientTOML renders the ingredient data as TOML for editing.
func RenderIngredientTOML(data IngredientData) (string, error) {
	var buf bytes.Buffer
	if err := ingredientTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

type rawIngredient struct {
	Name       string `toml:"name"`
	Brand      string `toml:"brand"`
	Category   string `toml:"category"`
	Location   string `toml:"location"`
	Confection string `toml:"confection"`
	Expires    string `toml:"expires"`
	Ripeness   string `toml:"ripeness"`
}

// ParsedIngredient is the validated result of an editing session.
type ParsedIngredient struct {
	Name           string
	Brand          string
	Category       ingredient.Category
	Location       ingredient.Location
	ConfectionType ingredient.ConfectionType
	ExpirationDate *time.Time
	Ripeness       ingredient.RipenessStatus
}

// ParseIngredientTOML parses and validates the TOML saved by the editor.
func ParseIngredientTOML(content string) (*ParsedIngredient, error) {
	var raw rawIngredient
	if _, err := toml.Decode(content, &raw); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	if err := ingredient.ValidateName(raw.Name); err != nil {
		return nil, err
	}

	parsed := &ParsedIngredient{Name: raw.Name, Brand: raw.Brand}
	var err error
	if parsed.Category, err = validation.ParseEnum("category", raw.Category, ingredient.ValidCategories(), true); err != nil {
		return nil, err
	}
	if parsed.Location, err = validation.ParseEnum("location", raw.Location, ingredient.ValidLocations(), true); err != nil {
		return nil, err
	}
	if parsed.ConfectionType, err = validation.ParseEnum("confection", raw.Confection, ingredient.ValidConfectionTypes(), true); err != nil {
		return nil, err
	}
	if parsed.Ripeness, err = validation.ParseEnum("ripeness", raw.Ripeness, ingredient.ValidRipenessStatuses(), true); err != nil {
		return nil, err
	}
	if !internalstrings.IsBlank(raw.Expires) {
		expires, err := ingredient.ParseTime(raw.Expires)
		if err != nil {
			return nil, fmt.Errorf("invalid expires: %w", err)
		}
		parsed.ExpirationDate = &expires
	}

	return parsed, nil
}

// Apply copies the parsed fields onto item. A ripeness status that differs
// from the stored one counts as a new check made at now.
func (p *ParsedIngredient) Apply(item *ingredient.Ingredient, now time.Time) {
	item.Name = p.Name
	item.Brand = p.Brand
	item.Category = p.Category
	item.Location = p.Location
	item.ConfectionType = p.ConfectionType
	item.ExpirationDate = p.ExpirationDate

	switch {
	case p.Ripeness == "":
		item.Ripeness = nil
	case item.Ripeness == nil || item.Ripeness.Status != p.Ripeness:
		item.Ripeness = &ingredient.Ripeness{Status: p.Ripeness, LastChecked: now}
	}
}

// EditIngredient opens the editor on item and returns the parsed result.
func EditIngredient(item ingredient.Ingredient) (*ParsedIngredient, error) {
	content, err := RenderIngredientTOML(DataFromIngredient(item))
	if err != nil {
		return nil, err
	}

	edited, err := EditContent(content, "pantry-ingredient-*.toml")
	if err != nil {
		return nil, err
	}

	return ParseIngredientTOML(edited)
}
