// Package main provides the entry point for the stencil CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	stencilmcp "github.com/gorewood/stencil/internal/mcp"
	"github.com/gorewood/stencil/internal/output"
	"github.com/gorewood/stencil/internal/registry"
	"github.com/gorewood/stencil/internal/watcher"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var watchFlag bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run stencil as a Model Context Protocol (MCP) server over stdio.

Every template becomes an MCP prompt whose arguments are its placeholders,
and the library is queryable through tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "stencil": {
        "command": "stencil",
        "args": ["serve"]
      }
    }
  }

Available tools: list_templates, search_templates, show_template, render_template`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, watchFlag)
		},
	}

	cmd.Flags().BoolVar(&watchFlag, "watch", false, "Reload templates when the templates directory changes")

	return cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, watch bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).WithStderr(cmd.ErrOrStderr())

	root := templatesDir(cmd)
	store, err := registry.NewStore(root)
	if err != nil {
		return loadError(root, err)
	}

	server := stencilmcp.NewServer(buildVersion(), store)

	if watch {
		w, err := watcher.New(watcher.DefaultConfig(root))
		if err != nil {
			return output.NewSystemErrorWithCause("starting templates watcher", err)
		}
		changes, err := w.Start()
		if err != nil {
			return output.NewSystemErrorWithCause("starting templates watcher", err)
		}
		defer func() { _ = w.Stop() }()

		ctx := cmd.Context()
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-changes:
					if reloadErr := server.Reload(); reloadErr != nil {
						printer.Stderr("reload failed: %v", reloadErr)
					}
				}
			}
		}()
	}

	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
