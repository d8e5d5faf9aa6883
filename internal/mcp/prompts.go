package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/stencil/internal/render"
	"github.com/gorewood/stencil/internal/template"
)

// promptFor builds the MCP prompt definition for a template. Each placeholder
// in the prompt body becomes an optional prompt argument.
func promptFor(tmpl *template.Template) *mcp.Prompt {
	names := render.Placeholders(tmpl.StylePrompt)
	args := make([]*mcp.PromptArgument, 0, len(names))
	for _, name := range names {
		args = append(args, &mcp.PromptArgument{
			Name:        name,
			Description: "value substituted for {{ " + name + " }}",
		})
	}
	return &mcp.Prompt{
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Arguments:   args,
	}
}

// handleGetPrompt renders the template body with the request arguments and
// returns it as a single user message.
func handleGetPrompt(tmpl *template.Template) mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		result := render.Render(tmpl.StylePrompt, req.Params.Arguments)
		description := tmpl.Description
		if len(result.Unresolved) > 0 {
			description += " (unresolved placeholders: " + strings.Join(result.Unresolved, ", ") + ")"
		}
		return &mcp.GetPromptResult{
			Description: description,
			Messages: []*mcp.PromptMessage{{
				Role:    "user",
				Content: &mcp.TextContent{Text: result.Output},
			}},
		}, nil
	}
}
