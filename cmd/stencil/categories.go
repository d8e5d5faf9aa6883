// Package main provides the entry point for the stencil CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

// newCategoriesCmd creates the categories command.
func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List template categories",
		Long: `List the categories found in the templates tree with template counts.

A template's category is the folder it lives in; templates directly under the
templates root have no category.`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}
}

// runCategories executes the categories command.
func runCategories(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	store, err := loadStore(cmd, printer)
	if err != nil {
		printer.Error(err)
		return err
	}

	categories := store.Registry().Categories()

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":      len(categories),
			"categories": categories,
		})
	}

	if len(categories) == 0 {
		printer.Println("no categories found in " + store.Root())
		return nil
	}

	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		name := cat.Name
		if name == "" {
			name = "(uncategorized)"
		}
		rows = append(rows, []string{name, strconv.Itoa(cat.Count)})
	}
	printer.Table([]string{"CATEGORY", "TEMPLATES"}, rows)
	return nil
}
