// Package ui implements the interactive template browser.
// The left pane lists templates with fuzzy filtering, the right pane previews
// the selected template's prompt body.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gorewood/stencil/internal/clipboard"
	"github.com/gorewood/stencil/internal/registry"
	"github.com/gorewood/stencil/internal/render"
	"github.com/gorewood/stencil/internal/template"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	previewStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// templateItem adapts a template to the bubbles list.Item interface.
type templateItem struct {
	tmpl *template.Template
}

// FilterValue covers the same fields keyword search does.
func (i templateItem) FilterValue() string {
	return strings.Join(append([]string{
		i.tmpl.Name,
		i.tmpl.Category,
		i.tmpl.Description,
	}, i.tmpl.Labels...), " ")
}

// templateDelegate renders one template per line.
type templateDelegate struct{}

// Height returns the height of a single list item.
func (d templateDelegate) Height() int { return 1 }

// Spacing returns the spacing between list items.
func (d templateDelegate) Spacing() int { return 0 }

// Update handles updates for list items (no-op for read-only display).
func (d templateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d templateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	tmpl := item.(templateItem).tmpl

	prefix := "  "
	name := tmpl.Name
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		name = selectedStyle.Render(name)
	}

	line := prefix + name
	if tmpl.Category != "" {
		line += " " + categoryStyle.Render("["+tmpl.Category+"]")
	}
	_, _ = fmt.Fprint(w, line)
}

// Options narrows and parameterizes a browse session.
type Options struct {
	// Category preselects one category; empty shows everything.
	Category string
	// Vars are substituted into copied prompts.
	Vars map[string]string
}

// Model holds the browser state.
type Model struct {
	list      list.Model
	clip      clipboard.Clipboard
	vars      map[string]string
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// New creates a browser over the registry's templates.
func New(reg *registry.Registry, clip clipboard.Clipboard, opts Options) Model {
	templates := reg.List(opts.Category)
	items := make([]list.Item, len(templates))
	for i, tmpl := range templates {
		items[i] = templateItem{tmpl: tmpl}
	}

	l := list.New(items, templateDelegate{}, 0, 0)
	l.Title = "Templates"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{list: l, clip: clip, vars: opts.Vars}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the template under the cursor, or nil when the list is
// empty or filtered down to nothing.
func (m Model) selected() *template.Template {
	item, ok := m.list.SelectedItem().(templateItem)
	if !ok {
		return nil
	}
	return item.tmpl
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.leftWidth(), msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// While the filter input is focused, keys belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter", "c":
			return m.copySelected(false), nil
		case "y":
			return m.copySelected(true), nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// copySelected puts the selected template on the clipboard. With full set the
// whole source YAML is copied, otherwise just the prompt body.
func (m Model) copySelected(full bool) Model {
	tmpl := m.selected()
	if tmpl == nil {
		return m
	}

	source := tmpl.StylePrompt
	what := "prompt"
	if full {
		source = tmpl.Raw
		what = "template"
	}
	text := render.Render(source, m.vars).Output

	if err := m.clip.Copy(text); err != nil {
		m.status = "clipboard error: " + err.Error()
		m.statusErr = true
		return m
	}
	m.status = fmt.Sprintf("copied %s %q", what, tmpl.Name)
	m.statusErr = false
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	left := m.list.View()
	right := m.previewView()
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := m.statusLine()
	return lipgloss.JoinVertical(lipgloss.Left, panes, status)
}

func (m Model) leftWidth() int {
	return m.width / 3
}

// previewView renders the right pane for the selected template.
func (m Model) previewView() string {
	width := m.width - m.leftWidth() - 4
	if width < 10 {
		width = 10
	}

	tmpl := m.selected()
	if tmpl == nil {
		return previewStyle.Width(width).Render("no template selected")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(tmpl.Name))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(tmpl.Description, width))
	b.WriteString("\n")
	if tmpl.Category != "" {
		b.WriteString(categoryStyle.Render("category: " + tmpl.Category))
		b.WriteString("\n")
	}
	if len(tmpl.Labels) > 0 {
		b.WriteString(labelStyle.Render("labels: " + strings.Join(tmpl.Labels, ", ")))
		b.WriteString("\n")
	}
	if names := render.Placeholders(tmpl.StylePrompt); len(names) > 0 {
		b.WriteString(labelStyle.Render("placeholders: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(wordwrap.String(tmpl.StylePrompt, width))

	return previewStyle.Width(width).Render(b.String())
}

func (m Model) statusLine() string {
	if m.status != "" {
		if m.statusErr {
			return errorStyle.Render(m.status)
		}
		return statusStyle.Render(m.status)
	}
	return helpStyle.Render("enter/c copy prompt • y copy yaml • / filter • q quit")
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(reg *registry.Registry, clip clipboard.Clipboard, opts Options) error {
	program := tea.NewProgram(New(reg, clip, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
