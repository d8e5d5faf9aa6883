// Package main provides the entry point for the stencil CLI.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/stencil/internal/config"
	"github.com/gorewood/stencil/internal/output"
	"github.com/gorewood/stencil/internal/registry"
	"github.com/gorewood/stencil/internal/template"
)

// newPrinter builds the output printer for a command invocation, honoring the
// persistent --json and --color flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	colorMode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		colorMode = flag.Value.String()
	}
	w := cmd.OutOrStdout()
	return output.NewPrinter(w, isJSONMode(cmd), output.ResolveColorMode(colorMode, output.IsTTY(w)))
}

// templatesDir resolves the templates root for a command invocation.
func templatesDir(cmd *cobra.Command) string {
	flagValue := ""
	if flag := cmd.Root().PersistentFlags().Lookup("dir"); flag != nil {
		flagValue = flag.Value.String()
	}
	return config.TemplatesDir(flagValue)
}

// loadStore loads the template registry for a command invocation. Files that
// fail to parse are reported as warnings on stderr in human mode; a missing
// root is a hard error.
func loadStore(cmd *cobra.Command, printer *output.Printer) (*registry.Store, error) {
	root := templatesDir(cmd)
	store, err := registry.NewStore(root)
	if err != nil {
		return nil, loadError(root, err)
	}

	if !printer.IsJSON() {
		for _, diag := range store.Diagnostics() {
			printer.Warn("skipped %s", diag.String())
		}
	}
	return store, nil
}

// loadStoreQuiet loads the registry without reporting per-file diagnostics;
// validate prints them itself.
func loadStoreQuiet(cmd *cobra.Command) (*registry.Store, error) {
	root := templatesDir(cmd)
	store, err := registry.NewStore(root)
	if err != nil {
		return nil, loadError(root, err)
	}
	return store, nil
}

// loadError classifies a registry load failure. A missing root is the user's
// configuration problem; anything else is an I/O failure.
func loadError(root string, err error) *output.ExitError {
	msg := fmt.Sprintf("loading templates from %s", root)
	if errors.Is(err, template.ErrRootNotFound) {
		return output.NewUserErrorWithCause(msg, err)
	}
	return output.NewSystemErrorWithCause(msg, err)
}

// parseSetVars parses repeated --set name=value flags into a variable map.
func parseSetVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, output.NewUserError(fmt.Sprintf("invalid --set value %q, expected name=value", pair))
		}
		vars[name] = value
	}
	return vars, nil
}

// templateRow is one line of list-style output.
type templateRow struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description"`
	Labels      []string `json:"labels,omitempty"`
}

func newTemplateRow(tmpl *template.Template) templateRow {
	return templateRow{
		Name:        tmpl.Name,
		Category:    tmpl.Category,
		Description: tmpl.Description,
		Labels:      tmpl.Labels,
	}
}

// templateTable prints templates as a name/category/description table.
func templateTable(printer *output.Printer, templates []*template.Template) {
	rows := make([][]string, 0, len(templates))
	for _, tmpl := range templates {
		rows = append(rows, []string{tmpl.Name, tmpl.Category, tmpl.Description})
	}
	printer.Table([]string{"NAME", "CATEGORY", "DESCRIPTION"}, rows)
}
