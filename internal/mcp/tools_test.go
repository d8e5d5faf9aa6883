package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/stencil/internal/registry"
)

// --- Test helpers ---

func makeTestStore(t *testing.T) *registry.Store {
	t.Helper()
	root := t.TempDir()
	writeTemplate(t, root, "writing/bug_report.yaml", `prompt_name: bug_report
description: Structured bug report writer
labels:
  - writing
  - qa
style_prompt: |
  Write a bug report about {{ symptom }} observed in {{ component }}.
`)
	writeTemplate(t, root, "writing/documentation_writer.yaml", `prompt_name: documentation_writer
description: Technical documentation author
style_prompt: Document the feature for {{ audience }}.
`)
	writeTemplate(t, root, "coding/code_reviewer.yaml", `prompt_name: code_reviewer
description: Reviews diffs for correctness
style_prompt: Review this change carefully.
`)

	store, err := registry.NewStore(root)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func writeTemplate(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
}

// --- List handler tests ---

func TestHandleList_All(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleList(store)(context.Background(), nil, ListInput{})
	if err != nil {
		t.Fatalf("handleList: %v", err)
	}
	if out.Count != 3 {
		t.Fatalf("Count = %d, want 3", out.Count)
	}
	if out.Templates[0].Name != "bug_report" {
		t.Errorf("first template = %q, want bug_report", out.Templates[0].Name)
	}
	if out.Templates[0].Category != "writing" {
		t.Errorf("category = %q, want writing", out.Templates[0].Category)
	}
}

func TestHandleList_FilteredByCategory(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleList(store)(context.Background(), nil, ListInput{Category: "coding"})
	if err != nil {
		t.Fatalf("handleList: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	if out.Templates[0].Name != "code_reviewer" {
		t.Errorf("template = %q, want code_reviewer", out.Templates[0].Name)
	}
}

// --- Search handler tests ---

func TestHandleSearch(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleSearch(store)(context.Background(), nil, SearchInput{Query: "documentation"})
	if err != nil {
		t.Fatalf("handleSearch: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	if out.Templates[0].Name != "documentation_writer" {
		t.Errorf("match = %q, want documentation_writer", out.Templates[0].Name)
	}
}

func TestHandleSearch_NoMatches(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleSearch(store)(context.Background(), nil, SearchInput{Query: "nonexistent"})
	if err != nil {
		t.Fatalf("handleSearch: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("Count = %d, want 0", out.Count)
	}
}

// --- Show handler tests ---

func TestHandleShow(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleShow(store)(context.Background(), nil, ShowInput{Name: "bug_report"})
	if err != nil {
		t.Fatalf("handleShow: %v", err)
	}
	if out.Description != "Structured bug report writer" {
		t.Errorf("Description = %q", out.Description)
	}
	wantPlaceholders := []string{"symptom", "component"}
	if len(out.Placeholders) != len(wantPlaceholders) {
		t.Fatalf("Placeholders = %v, want %v", out.Placeholders, wantPlaceholders)
	}
	for i, name := range wantPlaceholders {
		if out.Placeholders[i] != name {
			t.Errorf("Placeholders[%d] = %q, want %q", i, out.Placeholders[i], name)
		}
	}
}

func TestHandleShow_NotFound(t *testing.T) {
	store := makeTestStore(t)

	_, _, err := handleShow(store)(context.Background(), nil, ShowInput{Name: "shakespeare"})
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// --- Render handler tests ---

func TestHandleRender(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleRender(store)(context.Background(), nil, RenderInput{
		Name: "documentation_writer",
		Variables: map[string]string{
			"audience": "new contributors",
		},
	})
	if err != nil {
		t.Fatalf("handleRender: %v", err)
	}
	if out.Text != "Document the feature for new contributors." {
		t.Errorf("Text = %q", out.Text)
	}
	if len(out.Unresolved) != 0 {
		t.Errorf("Unresolved = %v, want none", out.Unresolved)
	}
}

func TestHandleRender_UnresolvedReported(t *testing.T) {
	store := makeTestStore(t)

	_, out, err := handleRender(store)(context.Background(), nil, RenderInput{
		Name:      "bug_report",
		Variables: map[string]string{"symptom": "a crash"},
	})
	if err != nil {
		t.Fatalf("handleRender: %v", err)
	}
	if len(out.Unresolved) != 1 || out.Unresolved[0] != "component" {
		t.Errorf("Unresolved = %v, want [component]", out.Unresolved)
	}
}

func TestHandleRender_NotFound(t *testing.T) {
	store := makeTestStore(t)

	_, _, err := handleRender(store)(context.Background(), nil, RenderInput{Name: "missing"})
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// --- Prompt handler tests ---

func TestPromptFor_ArgumentsFromPlaceholders(t *testing.T) {
	store := makeTestStore(t)
	tmpl, err := store.Registry().Get("bug_report")
	if err != nil {
		t.Fatalf("getting template: %v", err)
	}

	prompt := promptFor(tmpl)
	if prompt.Name != "bug_report" {
		t.Errorf("Name = %q", prompt.Name)
	}
	if len(prompt.Arguments) != 2 {
		t.Fatalf("Arguments = %d, want 2", len(prompt.Arguments))
	}
	if prompt.Arguments[0].Name != "symptom" || prompt.Arguments[1].Name != "component" {
		t.Errorf("argument names = %q, %q", prompt.Arguments[0].Name, prompt.Arguments[1].Name)
	}
}

func TestHandleGetPrompt(t *testing.T) {
	store := makeTestStore(t)
	tmpl, err := store.Registry().Get("documentation_writer")
	if err != nil {
		t.Fatalf("getting template: %v", err)
	}

	result, err := handleGetPrompt(tmpl)(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "documentation_writer",
			Arguments: map[string]string{"audience": "operators"},
		},
	})
	if err != nil {
		t.Fatalf("handleGetPrompt: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("Messages = %d, want 1", len(result.Messages))
	}
	text, ok := result.Messages[0].Content.(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", result.Messages[0].Content)
	}
	if text.Text != "Document the feature for operators." {
		t.Errorf("Text = %q", text.Text)
	}
}
