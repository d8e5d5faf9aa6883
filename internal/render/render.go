// Package render substitutes {{ name }} placeholders in template text.
//
// Rendering is pure substitution: no conditionals, no loops. Placeholders
// without a supplied value stay literal in the output and are reported, so a
// render never fails.
package render

import "regexp"

// placeholderPattern matches {{ name }} tokens with optional inner spacing.
// Names are identifiers: letters, digits, underscores, not digit-led.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Result holds the rendered text and the placeholders left unresolved.
type Result struct {
	Output     string   `json:"output"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// Render substitutes each placeholder that has a value in vars.
// Unknown placeholders are left intact and listed in Result.Unresolved,
// distinct and in order of first appearance.
func Render(text string, vars map[string]string) Result {
	seen := make(map[string]bool)
	var unresolved []string

	output := placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		if !seen[name] {
			seen[name] = true
			unresolved = append(unresolved, name)
		}
		return token
	})

	return Result{Output: output, Unresolved: unresolved}
}

// Placeholders returns the distinct placeholder names in text, in order of
// first appearance.
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
