// Package main provides the entry point for the stencil CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long: `List all loaded templates in alphabetical order.

Examples:
  stencil list                     # All templates
  stencil list --category writing  # Only one category
  stencil list --json              # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, categoryFlag)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only list templates in this category")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, category string) error {
	printer := newPrinter(cmd)

	store, err := loadStore(cmd, printer)
	if err != nil {
		printer.Error(err)
		return err
	}

	templates := store.Registry().List(category)

	if printer.IsJSON() {
		rows := make([]templateRow, 0, len(templates))
		for _, tmpl := range templates {
			rows = append(rows, newTemplateRow(tmpl))
		}
		return printer.WriteJSON(map[string]any{
			"count":     len(rows),
			"templates": rows,
		})
	}

	if len(templates) == 0 {
		if category != "" {
			printer.Println("no templates in category " + category)
		} else {
			printer.Println("no templates found in " + store.Root())
		}
		return nil
	}

	templateTable(printer, templates)
	return nil
}
