package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole collection to stdout",
	Long: `Write the whole collection to stdout.

JSON output uses the storage format, so it can be copied into a data
directory as ingredients.json.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportFormat string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json, yaml)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	data, err := exportItems(a.store.Items(), exportFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func exportItems(items []ingredient.Ingredient, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := ingredient.Encode(items)
		if err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return nil, fmt.Errorf("indent export: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	case "yaml", "yml":
		if items == nil {
			items = []ingredient.Ingredient{}
		}
		data, err := yaml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (valid: json, yaml)", format)
	}
}
