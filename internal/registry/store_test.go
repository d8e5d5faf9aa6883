package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/stencil/internal/template"
)

func writeStoreTemplate(t *testing.T, root, relPath, name string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "prompt_name: " + name + "\ndescription: d\nstyle_prompt: s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewStore_LoadsTemplates(t *testing.T) {
	root := t.TempDir()
	writeStoreTemplate(t, root, "coding/a.yaml", "a")
	writeStoreTemplate(t, root, "coding/b.yaml", "b")

	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store.Registry().Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Registry().Len())
	}
	if store.Root() != root {
		t.Errorf("Root() = %q, want %q", store.Root(), root)
	}
}

func TestNewStore_RootMissing(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, template.ErrRootNotFound) {
		t.Fatalf("NewStore() error = %v, want ErrRootNotFound", err)
	}
}

func TestStore_Reload(t *testing.T) {
	root := t.TempDir()
	writeStoreTemplate(t, root, "coding/a.yaml", "a")

	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	writeStoreTemplate(t, root, "coding/b.yaml", "b")
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if store.Registry().Len() != 2 {
		t.Errorf("Len() after reload = %d, want 2", store.Registry().Len())
	}
}

func TestStore_DiagnosticsIncludeDuplicates(t *testing.T) {
	root := t.TempDir()
	writeStoreTemplate(t, root, "coding/a.yaml", "same")
	writeStoreTemplate(t, root, "design/b.yaml", "same")

	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store.Registry().Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Registry().Len())
	}

	diags := store.Diagnostics()
	if len(diags) != 1 || !errors.Is(diags[0].Err, ErrDuplicateName) {
		t.Errorf("Diagnostics() = %v, want one ErrDuplicateName", diags)
	}
}
