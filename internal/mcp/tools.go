package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/stencil/internal/registry"
	"github.com/gorewood/stencil/internal/render"
	"github.com/gorewood/stencil/internal/template"
)

// --- Shared types ---

// TemplateSummary is a simplified template for tool output.
type TemplateSummary struct {
	Name        string   `json:"name"               jsonschema:"template name"`
	Category    string   `json:"category,omitempty" jsonschema:"category the template belongs to"`
	Description string   `json:"description"        jsonschema:"one-line purpose of the template"`
	Labels      []string `json:"labels,omitempty"   jsonschema:"freeform labels"`
}

func toSummary(tmpl *template.Template) TemplateSummary {
	return TemplateSummary{
		Name:        tmpl.Name,
		Category:    tmpl.Category,
		Description: tmpl.Description,
		Labels:      tmpl.Labels,
	}
}

func toSummaries(templates []*template.Template) []TemplateSummary {
	summaries := make([]TemplateSummary, 0, len(templates))
	for _, tmpl := range templates {
		summaries = append(summaries, toSummary(tmpl))
	}
	return summaries
}

// --- List tool ---

// ListInput is the input for the list_templates tool.
type ListInput struct {
	Category string `json:"category,omitempty" jsonschema:"only return templates in this category"`
}

// ListOutput is the output for the list_templates tool.
type ListOutput struct {
	Count     int               `json:"count"               jsonschema:"number of templates returned"`
	Templates []TemplateSummary `json:"templates,omitempty" jsonschema:"templates in alphabetical order"`
}

func handleList(store *registry.Store) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		templates := store.Registry().List(input.Category)
		return nil, ListOutput{
			Count:     len(templates),
			Templates: toSummaries(templates),
		}, nil
	}
}

// --- Search tool ---

// SearchInput is the input for the search_templates tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"keyword to search for"`
}

// SearchOutput is the output for the search_templates tool.
type SearchOutput struct {
	Count     int               `json:"count"               jsonschema:"number of matching templates"`
	Templates []TemplateSummary `json:"templates,omitempty" jsonschema:"matches in rank order, best first"`
}

func handleSearch(store *registry.Store) mcp.ToolHandlerFor[SearchInput, SearchOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		matches := store.Registry().Search(input.Query)
		templates := make([]*template.Template, 0, len(matches))
		for _, match := range matches {
			templates = append(templates, match.Template)
		}
		return nil, SearchOutput{
			Count:     len(templates),
			Templates: toSummaries(templates),
		}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show_template tool.
type ShowInput struct {
	Name string `json:"name" jsonschema:"name of the template to show"`
}

// ShowOutput is the output for the show_template tool.
type ShowOutput struct {
	TemplateSummary
	StylePrompt  string   `json:"style_prompt"           jsonschema:"full prompt body"`
	Placeholders []string `json:"placeholders,omitempty" jsonschema:"placeholder names accepted by the body"`
}

func handleShow(store *registry.Store) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		tmpl, err := store.Registry().Get(input.Name)
		if err != nil {
			return nil, ShowOutput{}, fmt.Errorf("showing template: %w", err)
		}
		return nil, ShowOutput{
			TemplateSummary: toSummary(tmpl),
			StylePrompt:     tmpl.StylePrompt,
			Placeholders:    render.Placeholders(tmpl.StylePrompt),
		}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render_template tool.
type RenderInput struct {
	Name      string            `json:"name"                jsonschema:"name of the template to render"`
	Variables map[string]string `json:"variables,omitempty" jsonschema:"placeholder values keyed by placeholder name"`
}

// RenderOutput is the output for the render_template tool.
type RenderOutput struct {
	Name       string   `json:"name"                 jsonschema:"template that was rendered"`
	Text       string   `json:"text"                 jsonschema:"rendered prompt body"`
	Unresolved []string `json:"unresolved,omitempty" jsonschema:"placeholders left literal because no value was supplied"`
}

func handleRender(store *registry.Store) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		tmpl, err := store.Registry().Get(input.Name)
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("rendering template: %w", err)
		}
		result := render.Render(tmpl.StylePrompt, input.Variables)
		return nil, RenderOutput{
			Name:       tmpl.Name,
			Text:       result.Output,
			Unresolved: result.Unresolved,
		}, nil
	}
}
