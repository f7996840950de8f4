package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case LayoutLoadedMsg:
		m.doc = msg.Doc
		m.err = nil
		if n := m.leaves(); m.selected >= n {
			m.selected = max(n-1, 0)
		}
		return m, nil

	case LayoutErrorMsg:
		m.err = msg.Err
		return m, nil

	case WatcherFailedMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		if n := m.leaves(); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "shift+tab":
		if n := m.leaves(); n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
	case "c":
		m.forceClip = !m.forceClip
	case "o":
		m.flip = !m.flip
	case "r":
		return m, m.reload
	}

	return m, nil
}

// handleMouseMsg selects the cell under a left click
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i := m.slotAt(msg.X, msg.Y); i >= 0 {
		m.selected = i
	}
	return m, nil
}
