// Package main provides the entry point for the stencil CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/stencil/internal/template"
)

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search templates by keyword",
		Long: `Search template names, descriptions, labels, and categories.

Results are ranked: exact name matches first, then name substrings, then
matches in other fields. Ties keep alphabetical order.

Examples:
  stencil search review
  stencil search "bug report" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	store, err := loadStore(cmd, printer)
	if err != nil {
		printer.Error(err)
		return err
	}

	query := strings.Join(args, " ")
	matches := store.Registry().Search(query)
	templates := make([]*template.Template, 0, len(matches))
	for _, match := range matches {
		templates = append(templates, match.Template)
	}

	if printer.IsJSON() {
		rows := make([]templateRow, 0, len(templates))
		for _, tmpl := range templates {
			rows = append(rows, newTemplateRow(tmpl))
		}
		return printer.WriteJSON(map[string]any{
			"query":     query,
			"count":     len(rows),
			"templates": rows,
		})
	}

	if len(templates) == 0 {
		printer.Println("no templates match " + query)
		return nil
	}

	templateTable(printer, templates)
	return nil
}
