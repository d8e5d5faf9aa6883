package registry

import (
	"sync"

	"github.com/gorewood/stencil/internal/template"
)

// Store holds a registry loaded from a directory and supports reloading it
// wholesale when the directory changes. Long-running surfaces (the MCP
// server) read through a Store; one-shot commands build a Registry directly.
type Store struct {
	root string

	mu   sync.RWMutex
	reg  *Registry
	diag []template.Diagnostic
}

// NewStore loads the templates under root and returns a Store.
// Fails only when the root itself is invalid.
func NewStore(root string) (*Store, error) {
	store := &Store{root: root}
	if err := store.Reload(); err != nil {
		return nil, err
	}
	return store, nil
}

// Root returns the directory the store loads from.
func (s *Store) Root() string {
	return s.root
}

// Registry returns the current registry snapshot.
func (s *Store) Registry() *Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg
}

// Diagnostics returns the load and build diagnostics from the last reload.
func (s *Store) Diagnostics() []template.Diagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diag
}

// Reload rebuilds the registry from the root directory. On error the
// previous registry stays in place.
func (s *Store) Reload() error {
	templates, diags, err := template.Load(s.root)
	if err != nil {
		return err
	}
	reg, buildDiags := Build(templates)

	s.mu.Lock()
	s.reg = reg
	s.diag = append(diags, buildDiags...)
	s.mu.Unlock()
	return nil
}
