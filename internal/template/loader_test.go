package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTemplate writes a template file under root, creating parent dirs.
func writeTemplate(t *testing.T, root, relPath, content string) string {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func validTemplate(name string) string {
	return "prompt_name: " + name + "\ndescription: A test template\nstyle_prompt: Hello {{ tone }}\n"
}

func TestLoad_RootMissing(t *testing.T) {
	templates, diags, err := Load(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("Load() error = %v, want ErrRootNotFound", err)
	}
	if templates != nil || diags != nil {
		t.Error("Load() should produce no partial result when the root is missing")
	}
}

func TestLoad_RootIsFile(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "not-a-dir.yaml", validTemplate("x"))

	_, _, err := Load(path)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("Load() error = %v, want ErrRootNotFound", err)
	}
}

func TestLoad_ValidTree(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "coding/bug_report.yaml", validTemplate("bug_report"))
	writeTemplate(t, root, "coding/review.yml", validTemplate("review"))
	writeTemplate(t, root, "design/nested/wireframe.yaml", validTemplate("wireframe"))
	writeTemplate(t, root, "coding/notes.txt", "not a template")

	templates, diags, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
	if len(templates) != 3 {
		t.Fatalf("got %d templates, want 3", len(templates))
	}
}

func TestLoad_SkipsInvalidAndContinues(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "coding/good.yaml", validTemplate("good"))
	badParse := writeTemplate(t, root, "coding/broken.yaml", "prompt_name: [unclosed\n")
	badSchema := writeTemplate(t, root, "design/incomplete.yaml", "prompt_name: incomplete\n")

	templates, diags, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(templates) != 1 || templates[0].Name != "good" {
		t.Fatalf("templates = %v, want just 'good'", templates)
	}
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}

	byPath := make(map[string]error)
	for _, d := range diags {
		byPath[d.Path] = d.Err
	}
	if byPath[badParse] == nil {
		t.Errorf("missing diagnostic for parse failure at %s", badParse)
	}
	if !errors.Is(byPath[badSchema], ErrMissingField) {
		t.Errorf("diagnostic for %s = %v, want ErrMissingField", badSchema, byPath[badSchema])
	}
}

func TestLoad_CategoryFromFolder(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "coding/bug.yaml", validTemplate("bug"))
	writeTemplate(t, root, "design/deep/wireframe.yaml", validTemplate("wireframe"))
	writeTemplate(t, root, "rooted.yaml", validTemplate("rooted"))
	writeTemplate(t, root, "coding/explicit.yaml",
		"prompt_name: explicit\ndescription: d\nstyle_prompt: s\ncategory: custom\n")

	templates, _, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	categories := make(map[string]string)
	for _, tmpl := range templates {
		categories[tmpl.Name] = tmpl.Category
	}

	want := map[string]string{
		"bug":       "coding",
		"wireframe": "deep", // immediate parent folder, not top-level
		"rooted":    "",
		"explicit":  "custom", // explicit category is never overridden
	}
	for name, cat := range want {
		if categories[name] != cat {
			t.Errorf("category[%s] = %q, want %q", name, categories[name], cat)
		}
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	root := t.TempDir()
	raw := `prompt_name: roundtrip
description: Survives load unchanged
style_prompt: "Use a {{ tone }} voice."
labels: [a, b]
category: testing
`
	path := writeTemplate(t, root, "testing/roundtrip.yaml", raw)

	templates, _, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("got %d templates, want 1", len(templates))
	}

	tmpl := templates[0]
	if tmpl.Name != "roundtrip" ||
		tmpl.Description != "Survives load unchanged" ||
		tmpl.StylePrompt != "Use a {{ tone }} voice." ||
		tmpl.Category != "testing" {
		t.Errorf("record fields changed on load: %+v", tmpl)
	}
	if len(tmpl.Labels) != 2 || tmpl.Labels[0] != "a" || tmpl.Labels[1] != "b" {
		t.Errorf("Labels = %v, want [a b]", tmpl.Labels)
	}
	if tmpl.SourcePath != path {
		t.Errorf("SourcePath = %q, want %q", tmpl.SourcePath, path)
	}
	if tmpl.Raw != raw {
		t.Error("Raw should match the file content")
	}
}

func TestLoad_WalkOrderIsLexical(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "b/second.yaml", validTemplate("second"))
	writeTemplate(t, root, "a/first.yaml", validTemplate("first"))

	templates, _, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(templates))
	}
	if templates[0].Name != "first" || templates[1].Name != "second" {
		t.Errorf("walk order = [%s %s], want lexical [first second]",
			templates[0].Name, templates[1].Name)
	}
}

func TestIsTemplateFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a/b.yaml", true},
		{"a/b.yml", true},
		{"a/b.YAML", true},
		{"a/b.txt", false},
		{"a/b.yaml.bak", false},
		{"a/yaml", false},
	}
	for _, tt := range tests {
		if got := IsTemplateFile(tt.path); got != tt.want {
			t.Errorf("IsTemplateFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCategoryFromPath(t *testing.T) {
	if got := CategoryFromPath("/root", "/root/coding/a.yaml"); got != "coding" {
		t.Errorf("got %q, want %q", got, "coding")
	}
	if got := CategoryFromPath("/root", "/root/a.yaml"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := CategoryFromPath("/root", "/root/coding/deep/a.yaml"); got != "deep" {
		t.Errorf("got %q, want %q", got, "deep")
	}
}
