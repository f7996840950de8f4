package layout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Align positions a row's block of cells when they do not fill the row
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// ParseAlign parses "start", "center" or "end" (also "left"/"top" and
// "right"/"bottom")
func ParseAlign(text string) (Align, error) {
	switch text {
	case "", "start", "left", "top":
		return AlignStart, nil
	case "center", "middle":
		return AlignCenter, nil
	case "end", "right", "bottom":
		return AlignEnd, nil
	}
	return AlignStart, fmt.Errorf("layout: unknown alignment %q", text)
}

// Offset returns how far the block moves given the unused space in the row.
// Overflowing rows are never shifted.
func (a Align) Offset(slack int) int {
	if slack <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return slack / 2
	case AlignEnd:
		return slack
	default:
		return 0
	}
}

// Placement positions content inside a cell, using lipgloss positions
// (0 is left/top, 0.5 centre, 1 right/bottom)
type Placement struct {
	H lipgloss.Position
	V lipgloss.Position
}

// DefaultPlacement puts content in the top-left corner
var DefaultPlacement = Placement{H: lipgloss.Left, V: lipgloss.Top}

// Centered puts content in the middle of the cell
var Centered = Placement{H: lipgloss.Center, V: lipgloss.Center}

// ParsePosition parses a horizontal or vertical lipgloss position name
func ParsePosition(text string) (lipgloss.Position, error) {
	switch text {
	case "left", "top":
		return lipgloss.Left, nil
	case "center", "middle":
		return lipgloss.Center, nil
	case "right", "bottom":
		return lipgloss.Right, nil
	}
	return 0, fmt.Errorf("layout: unknown position %q", text)
}

// ChildOptions describe the drawing context handed to one cell
type ChildOptions struct {
	Placement Placement
	// Clip restricts painting to the child's area
	Clip bool
}
