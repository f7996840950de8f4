package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termgrid/canvas"
	"github.com/young1lin/termgrid/grid"
	"github.com/young1lin/termgrid/layout"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready || m.width <= 0 || m.height <= 0 {
		return "Loading...\n"
	}
	if m.doc == nil {
		if m.err != nil {
			return m.styles.Error.Render("Error: "+m.err.Error()) + "\n"
		}
		return "Loading layout...\n"
	}

	c := canvas.New(m.width, m.height)
	bounds := grid.Show(m.builder(), c, m.frame(), func(g *grid.Grid[*canvas.Canvas]) {
		for i := 0; g.Remaining() > 0; i++ {
			g.Cell(func(cell *canvas.Canvas) {
				m.paintCell(cell, i)
			})
		}
	})

	status := c.Child(layout.NewRect(0, m.height-1, m.width, 1), layout.ChildOptions{Clip: true})
	if m.err != nil {
		status.Label("Error: "+m.err.Error(), m.styles.Error)
	} else {
		status.Label(m.renderStatus(bounds), m.styles.Status)
	}

	return c.String()
}

// paintCell draws one leaf: a border, its label and its size
func (m Model) paintCell(cell *canvas.Canvas, i int) {
	area := cell.Area()
	border := m.styles.Border
	if i == m.selected {
		border = m.styles.Selected
	}

	inner := cell
	if area.W >= 2 && area.H >= 2 {
		cell.Border(lipgloss.RoundedBorder(), border)
		inner = cell.Inset(layout.EdgeAll(1))
	}

	label := m.doc.Label(i)
	if label == "" {
		label = fmt.Sprintf("#%d", i+1)
	}
	size := fmt.Sprintf("%dx%d", area.W, area.H)
	if inner.Area().H >= 2 {
		inner.Text(label+"\n"+size, m.styles.Label)
	} else {
		inner.Text(label, m.styles.Label)
	}
}

// renderStatus describes the layout and the selected cell
func (m Model) renderStatus(bounds layout.Rect) string {
	var parts []string
	if m.doc.Name != "" {
		parts = append(parts, m.doc.Name)
	}

	n := m.leaves()
	parts = append(parts, fmt.Sprintf("%d cells", n))
	if n > 0 {
		label := m.doc.Label(m.selected)
		if label == "" {
			label = fmt.Sprintf("#%d", m.selected+1)
		}
		parts = append(parts, fmt.Sprintf("%d/%d %s", m.selected+1, n, label))
	}
	parts = append(parts, fmt.Sprintf("used %dx%d", bounds.W, bounds.H))
	if m.forceClip {
		parts = append(parts, "clip")
	}
	if m.flip {
		parts = append(parts, "flipped")
	}
	return strings.Join(parts, " | ")
}
