// Package main provides the entry point for the stencil CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/stencil/internal/clipboard"
	"github.com/gorewood/stencil/internal/output"
	"github.com/gorewood/stencil/internal/ui"
)

// newBrowseCmd creates the browse command.
func newBrowseCmd() *cobra.Command {
	var (
		categoryFlag string
		setFlags     []string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse templates interactively",
		Long: `Open an interactive browser over the template library.

The left pane lists templates with fuzzy filtering (press /), the right pane
previews the selected template. Values given via --set are substituted into
copied prompts.

Keys:
  enter, c   copy the prompt body to the clipboard
  y          copy the full source YAML to the clipboard
  /          filter the list
  q, esc     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, categoryFlag, setFlags)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only browse templates in this category")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Placeholder value as name=value (repeatable)")

	return cmd
}

// runBrowse executes the browse command.
func runBrowse(cmd *cobra.Command, category string, setFlags []string) error {
	printer := newPrinter(cmd)

	if isJSONMode(cmd) {
		err := output.NewUserError("browse is interactive and does not support --json")
		printer.Error(err)
		return err
	}

	vars, err := parseSetVars(setFlags)
	if err != nil {
		printer.Error(err)
		return err
	}

	store, err := loadStore(cmd, printer)
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(store.Registry().List(category)) == 0 {
		if category != "" {
			printer.Println("no templates in category " + category)
		} else {
			printer.Println("no templates found in " + store.Root())
		}
		return nil
	}

	opts := ui.Options{Category: category, Vars: vars}
	if err := ui.Run(store.Registry(), clipboard.System{}, opts); err != nil {
		sysErr := output.NewSystemErrorWithCause("running browser", err)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}
