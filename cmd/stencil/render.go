// Package main provides the entry point for the stencil CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/stencil/internal/clipboard"
	"github.com/gorewood/stencil/internal/output"
	"github.com/gorewood/stencil/internal/render"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	return newRenderCmdInternal(clipboard.System{})
}

// newRenderCmdInternal creates the render command with an injected clipboard
// so tests never touch the system clipboard.
func newRenderCmdInternal(clip clipboard.Clipboard) *cobra.Command {
	var (
		setFlags []string
		copyFlag bool
		fullFlag bool
	)

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Render a template with variable substitutions",
		Long: `Render a template's prompt body, substituting {{ placeholder }} markers
with values given via --set. Placeholders without a value stay literal and
are reported on stderr.

Examples:
  stencil render bug_report --set symptom="login loops forever"
  stencil render bug_report --set symptom=crash --copy   # To clipboard
  stencil render bug_report --full                       # Whole YAML, body rendered`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, clip, args[0], setFlags, copyFlag, fullFlag)
		},
	}

	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Placeholder value as name=value (repeatable)")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the rendered output to the clipboard instead of printing")
	cmd.Flags().BoolVar(&fullFlag, "full", false, "Render the whole source YAML, not just the prompt body")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, clip clipboard.Clipboard, name string, setFlags []string, copyOut, full bool) error {
	printer := newPrinter(cmd)

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

	tmpl, err := store.Registry().Get(name)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	source := tmpl.StylePrompt
	if full {
		source = tmpl.Raw
	}
	result := render.Render(source, vars)

	if copyOut {
		if err := clip.Copy(result.Output); err != nil {
			sysErr := output.NewSystemErrorWithCause("copying to clipboard", err)
			printer.Error(sysErr)
			return sysErr
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"name":       tmpl.Name,
			"output":     result.Output,
			"unresolved": result.Unresolved,
			"copied":     copyOut,
		})
	}

	if len(result.Unresolved) > 0 {
		printer.Warn("unresolved placeholders: %s", strings.Join(result.Unresolved, ", "))
	}

	if copyOut {
		printer.Println("copied rendered output of " + tmpl.Name + " to clipboard")
		return nil
	}

	printer.Print("%s", result.Output)
	if !strings.HasSuffix(result.Output, "\n") {
		printer.Println()
	}
	return nil
}
