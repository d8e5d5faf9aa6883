// Package mcp provides a Model Context Protocol server for stencil.
// It exposes every loaded template as an MCP prompt and offers query tools
// that any MCP-capable agent can use to browse, search, and render templates.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/stencil/internal/registry"
)

// Server wraps the MCP server together with the template store backing it.
// Reload re-reads the templates root and keeps the prompt list in step,
// which is what the serve command's watch mode calls on filesystem changes.
type Server struct {
	mcp     *mcp.Server
	store   *registry.Store
	prompts []string
}

// NewServer creates an MCP server with all stencil tools registered and one
// prompt per template in the store's registry.
func NewServer(version string, store *registry.Store) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "stencil",
		Version: version,
	}, nil)
	registerTools(server, store)

	s := &Server{mcp: server, store: store}
	s.syncPrompts()
	return s
}

// Run serves MCP over the given transport until the context is cancelled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// Reload re-reads the templates root and re-registers prompts. The previous
// registry stays active if the reload fails.
func (s *Server) Reload() error {
	if err := s.store.Reload(); err != nil {
		return err
	}
	s.syncPrompts()
	return nil
}

// syncPrompts replaces the registered prompt list with the current registry
// contents.
func (s *Server) syncPrompts() {
	if len(s.prompts) > 0 {
		s.mcp.RemovePrompts(s.prompts...)
	}
	s.prompts = s.prompts[:0]
	for _, tmpl := range s.store.Registry().List("") {
		s.mcp.AddPrompt(promptFor(tmpl), handleGetPrompt(tmpl))
		s.prompts = append(s.prompts, tmpl.Name)
	}
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all stencil tools to the server.
func registerTools(server *mcp.Server, store *registry.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List available prompt templates, optionally filtered by category. Returns name, category, description, and labels for each template.",
		Annotations: readOnlyAnnotations(),
	}, handleList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_templates",
		Description: "Search templates by keyword across names, descriptions, labels, and categories. Results are ranked: exact name matches first, then name substrings, then other field matches.",
		Annotations: readOnlyAnnotations(),
	}, handleSearch(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_template",
		Description: "Show a single template by name, including its full prompt body and the placeholders it accepts.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_template",
		Description: "Render a template's prompt body with variable substitutions. Unresolved placeholders are left literal and reported.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(store))
}
