// Package clipboard copies rendered prompt text to the system clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard is the destination for copied text.
type Clipboard interface {
	Copy(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// Copy puts text on the system clipboard.
func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Mock records copied text for tests.
type Mock struct {
	Copied []string
	Err    error
}

// Copy appends text to Copied, or returns the configured error.
func (m *Mock) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}
