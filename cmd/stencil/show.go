// Package main provides the entry point for the stencil CLI.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/stencil/internal/output"
	"github.com/gorewood/stencil/internal/render"
	"github.com/gorewood/stencil/internal/template"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display a single template",
		Long: `Display a template's metadata, placeholders, and prompt body.

Examples:
  stencil show bug_report          # Preview a template
  stencil show bug_report --raw    # Print the source YAML verbatim
  stencil show bug_report --json   # Show as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the template's source YAML unchanged")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, name string, raw bool) error {
	printer := newPrinter(cmd)

	store, err := loadStore(cmd, printer)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := store.Registry().Get(name)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if raw {
		printer.Print("%s", tmpl.Raw)
		return nil
	}

	if printer.IsJSON() {
		return printer.WriteJSON(showPayload(tmpl))
	}

	outputShowHuman(printer, tmpl)
	return nil
}

// showPayload builds the JSON document for a single template.
func showPayload(tmpl *template.Template) map[string]any {
	payload := map[string]any{
		"name":         tmpl.Name,
		"category":     tmpl.Category,
		"description":  tmpl.Description,
		"labels":       tmpl.Labels,
		"placeholders": render.Placeholders(tmpl.StylePrompt),
		"style_prompt": tmpl.StylePrompt,
		"source_path":  tmpl.SourcePath,
	}
	if len(tmpl.Extra) > 0 {
		payload["extra"] = tmpl.Extra
	}
	return payload
}

// extraKeyNames returns the template's additional YAML keys in sorted order.
func extraKeyNames(tmpl *template.Template) []string {
	keys := make([]string, 0, len(tmpl.Extra))
	for key := range tmpl.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// outputShowHuman renders a template preview for humans.
func outputShowHuman(printer *output.Printer, tmpl *template.Template) {
	printer.Section(tmpl.Name)
	printer.KeyValue("Description", tmpl.Description)
	if tmpl.Category != "" {
		printer.KeyValue("Category", tmpl.Category)
	}
	if len(tmpl.Labels) > 0 {
		printer.KeyValue("Labels", strings.Join(tmpl.Labels, ", "))
	}
	if names := render.Placeholders(tmpl.StylePrompt); len(names) > 0 {
		printer.KeyValue("Placeholders", strings.Join(names, ", "))
	}
	for _, key := range extraKeyNames(tmpl) {
		printer.KeyValue(key, fmt.Sprint(tmpl.Extra[key]))
	}
	printer.KeyValue("Source", tmpl.SourcePath)
	printer.Println()
	printer.Box("Prompt", strings.TrimRight(tmpl.StylePrompt, "\n"))
}
