// Package template defines the prompt template record and the loader that
// discovers and validates template files under a root directory.
package template

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for template parsing and loading.
// Callers should use errors.Is to classify diagnostics.
var (
	ErrRootNotFound = errors.New("template root directory not found")
	ErrNotTemplate  = errors.New("document is not a template mapping")
	ErrMissingField = errors.New("required template field missing")
)

// Required top-level keys in a template file.
const (
	KeyName        = "prompt_name"
	KeyDescription = "description"
	KeyStylePrompt = "style_prompt"
)

// Template is one parsed and validated prompt template.
// Records are immutable after load; the registry never mutates them.
type Template struct {
	// Metadata from the YAML document
	Name        string   `yaml:"prompt_name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	StylePrompt string   `yaml:"style_prompt" json:"style_prompt"`
	Labels      []string `yaml:"labels" json:"labels"`
	Category    string   `yaml:"category" json:"category,omitempty"`

	// Raw is the original file content, kept so the full YAML document can
	// be rendered and copied as-is.
	Raw string `yaml:"-" json:"-"`

	// Extra holds any additional top-level keys from the file. They carry no
	// meaning for the loader but are shown when previewing a template.
	Extra map[string]any `yaml:"-" json:"extra,omitempty"`

	// SourcePath is the file the template was loaded from. Used for
	// diagnostics only, never for identity.
	SourcePath string `yaml:"-" json:"source_path,omitempty"`
}

// Parse parses raw YAML content into a Template.
//
// Returns ErrNotTemplate when the document is empty or not a mapping, and
// ErrMissingField (naming every missing key) when a required field is absent
// or blank. Other errors indicate malformed YAML.
func Parse(raw []byte) (*Template, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	mapping, ok := doc.(map[string]any)
	if !ok || len(mapping) == 0 {
		return nil, ErrNotTemplate
	}

	var tmpl Template
	if err := yaml.Unmarshal(raw, &tmpl); err != nil {
		return nil, fmt.Errorf("invalid template fields: %w", err)
	}

	if missing := missingFields(&tmpl); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	tmpl.Raw = string(raw)
	tmpl.Extra = extraKeys(mapping)
	if tmpl.Labels == nil {
		tmpl.Labels = []string{}
	}

	return &tmpl, nil
}

// missingFields returns the YAML keys of required fields that are empty.
func missingFields(tmpl *Template) []string {
	var missing []string
	if strings.TrimSpace(tmpl.Name) == "" {
		missing = append(missing, KeyName)
	}
	if strings.TrimSpace(tmpl.Description) == "" {
		missing = append(missing, KeyDescription)
	}
	if strings.TrimSpace(tmpl.StylePrompt) == "" {
		missing = append(missing, KeyStylePrompt)
	}
	return missing
}

// extraKeys returns the top-level keys that are not part of the template
// schema, or nil if there are none.
func extraKeys(mapping map[string]any) map[string]any {
	known := map[string]bool{
		KeyName:        true,
		KeyDescription: true,
		KeyStylePrompt: true,
		"labels":       true,
		"category":     true,
	}

	var extra map[string]any
	for key, val := range mapping {
		if known[key] {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = val
	}
	return extra
}
