package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Diagnostic records a problem with a single template file.
// Diagnostics never abort a scan; they are collected and reported in
// aggregate after the walk completes.
type Diagnostic struct {
	Path string
	Err  error
}

// String formats the diagnostic as "path: message".
func (d Diagnostic) String() string {
	return d.Path + ": " + d.Err.Error()
}

// Load walks root and parses every .yaml/.yml file into a Template.
//
// Per-file failures (unreadable, malformed, missing required fields) become
// Diagnostics and the walk continues. Only a missing or non-directory root is
// fatal, reported as ErrRootNotFound with no partial result.
//
// Templates without an explicit category get one derived from their parent
// folder. Walk order is lexical, so the result is deterministic across
// platforms.
func Load(root string) ([]*Template, []Diagnostic, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, nil, fmt.Errorf("checking template root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	var (
		templates []*Template
		diags     []Diagnostic
	)

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			diags = append(diags, Diagnostic{Path: path, Err: err})
			return nil
		}
		if entry.IsDir() || !IsTemplateFile(path) {
			return nil
		}

		tmpl, err := loadFile(root, path)
		if err != nil {
			diags = append(diags, Diagnostic{Path: path, Err: err})
			return nil
		}
		templates = append(templates, tmpl)
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("walking template root %s: %w", root, walkErr)
	}

	return templates, diags, nil
}

// loadFile reads, parses, and normalizes a single template file.
func loadFile(root, path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	tmpl, err := Parse(data)
	if err != nil {
		return nil, err
	}

	tmpl.SourcePath = path
	if tmpl.Category == "" {
		tmpl.Category = CategoryFromPath(root, path)
	}
	return tmpl, nil
}

// IsTemplateFile reports whether path has a recognized template extension.
func IsTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// CategoryFromPath derives a template category from the name of the file's
// parent folder. Files directly under root have no derived category.
func CategoryFromPath(root, path string) string {
	dir := filepath.Dir(path)
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.Base(rel)
}
