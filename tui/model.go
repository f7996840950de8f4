// Package tui shows a layout document as a live grid in the terminal
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termgrid/grid"
	"github.com/young1lin/termgrid/internal/layoutfile"
	"github.com/young1lin/termgrid/layout"
)

// Model represents the application state
type Model struct {
	doc *layoutfile.Document

	// Terminal size
	width  int
	height int

	// Index of the selected leaf
	selected int

	// Overlays applied on top of the document
	forceClip bool
	flip      bool

	// State
	ready    bool
	quitting bool

	// reload re-reads the layout document; nil when there is no file
	reload tea.Cmd

	// Error state
	err error

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Border   lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.Border = lipgloss.NewStyle().
		Foreground(secondaryColor)

	styles.Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	return styles
}

// NewModel creates a new Model showing doc, which may be nil until a
// LayoutLoadedMsg arrives
func NewModel(doc *layoutfile.Document) Model {
	return Model{
		doc:    doc,
		styles: DefaultStyles(),
	}
}

// WithReload sets the command run when the user asks for a reload
func (m Model) WithReload(cmd tea.Cmd) Model {
	m.reload = cmd
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the index of the selected leaf
func (m Model) Selected() int {
	return m.selected
}

// Err returns the last load or watch error
func (m Model) Err() error {
	return m.err
}

// builder returns the document's grid with the overlays applied
func (m Model) builder() *grid.Builder {
	if m.doc == nil {
		return grid.New()
	}
	if !m.forceClip && !m.flip {
		return m.doc.Builder
	}
	b := m.doc.Builder.Clone()
	if m.forceClip {
		b.ClipAll(true)
	}
	if m.flip {
		b.RowsAsColumns(!b.IsRowsAsColumns())
	}
	return b
}

// frame is the region the grid is shown in: the window minus the status line
func (m Model) frame() layout.Rect {
	return layout.NewRect(0, 0, m.width, max(m.height-1, 0))
}

// leaves returns the number of selectable cells
func (m Model) leaves() int {
	if m.doc == nil {
		return 0
	}
	return m.doc.Builder.Leaves()
}

// slotAt returns the index of the leaf under (x, y), or -1
func (m Model) slotAt(x, y int) int {
	i := 0
	for slot := range m.builder().Slots(m.frame(), layout.Spacing{}) {
		if slot.Area.Contains(x, y) {
			return i
		}
		i++
	}
	return -1
}
