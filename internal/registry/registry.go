// Package registry holds the in-memory set of loaded templates and answers
// lookup, list, and search queries for one CLI invocation.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/gorewood/stencil/internal/template"
)

// Sentinel errors for registry operations.
var (
	ErrNotFound      = errors.New("template not found")
	ErrDuplicateName = errors.New("duplicate template name")
)

// Registry is the read-only collection of validated templates.
// Build once per invocation; never mutated afterwards.
type Registry struct {
	byName map[string]*template.Template
	names  []string // sorted alphabetically
}

// Category pairs a category name with its template count.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Build aggregates templates into a Registry.
//
// When two templates share a name, the first one (in load order) wins and
// the later one is dropped with an ErrDuplicateName diagnostic. Duplicates
// never abort the build.
func Build(templates []*template.Template) (*Registry, []template.Diagnostic) {
	reg := &Registry{
		byName: make(map[string]*template.Template, len(templates)),
	}

	var diags []template.Diagnostic
	for _, tmpl := range templates {
		if prev, ok := reg.byName[tmpl.Name]; ok {
			diags = append(diags, template.Diagnostic{
				Path: tmpl.SourcePath,
				Err:  fmt.Errorf("%w: %q already loaded from %s", ErrDuplicateName, tmpl.Name, prev.SourcePath),
			})
			continue
		}
		reg.byName[tmpl.Name] = tmpl
		reg.names = append(reg.names, tmpl.Name)
	}

	slices.Sort(reg.names)
	return reg, diags
}

// Len returns the number of templates in the registry.
func (r *Registry) Len() int {
	return len(r.names)
}

// Get returns the template with the given name.
// Returns ErrNotFound when no template has that name.
func (r *Registry) Get(name string) (*template.Template, error) {
	tmpl, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return tmpl, nil
}

// List returns templates sorted alphabetically by name, optionally filtered
// by exact category match. An empty category returns everything.
//
// Alphabetical ordering keeps output reproducible regardless of directory
// traversal order.
func (r *Registry) List(category string) []*template.Template {
	out := make([]*template.Template, 0, len(r.names))
	for _, name := range r.names {
		tmpl := r.byName[name]
		if category != "" && tmpl.Category != category {
			continue
		}
		out = append(out, tmpl)
	}
	return out
}

// Categories returns the distinct categories with template counts, sorted by
// name. Templates without a category are grouped under the empty name.
func (r *Registry) Categories() []Category {
	counts := make(map[string]int)
	for _, tmpl := range r.byName {
		counts[tmpl.Category]++
	}

	out := make([]Category, 0, len(counts))
	for name, count := range counts {
		out = append(out, Category{Name: name, Count: count})
	}
	slices.SortFunc(out, func(a, b Category) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
