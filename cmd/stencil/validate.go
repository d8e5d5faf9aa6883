// Package main provides the entry point for the stencil CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/stencil/internal/output"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every template file in the tree",
		Long: `Walk the templates tree and report files that are not valid templates:
malformed YAML, missing required keys, and duplicate template names.

Exits non-zero when any file fails validation, so it works as a CI gate.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	root := templatesDir(cmd)
	store, err := loadStoreQuiet(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	diags := store.Diagnostics()
	valid := store.Registry().Len()

	if printer.IsJSON() {
		problems := make([]map[string]string, 0, len(diags))
		for _, diag := range diags {
			problems = append(problems, map[string]string{
				"path":  diag.Path,
				"error": diag.Err.Error(),
			})
		}
		if writeErr := printer.WriteJSON(map[string]any{
			"root":     root,
			"valid":    valid,
			"problems": problems,
		}); writeErr != nil {
			return writeErr
		}
	} else {
		for _, diag := range diags {
			printer.Println(diag.String())
		}
		printer.Println(fmt.Sprintf("%d valid, %d failed", valid, len(diags)))
	}

	if len(diags) > 0 {
		return output.NewUserError(fmt.Sprintf("%d template file(s) failed validation", len(diags)))
	}
	return nil
}
