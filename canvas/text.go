package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut short by Label
const Ellipsis = "…"

// Measure returns the display width of a string.
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// Text writes s into the area, positioned by the context's placement.
// Multi-line text is placed as a block; each line is aligned within the
// block the same way. Text that does not fit spills past the area unless the
// context clips.
func (c *Canvas) Text(s string, style lipgloss.Style) {
	lines := strings.Split(sanitize(s), "\n")
	blockW := 0
	for _, line := range lines {
		blockW = max(blockW, Measure(line))
	}

	id := c.buf.addStyle(style)
	x0 := c.area.X + offset(c.area.W-blockW, c.place.H)
	y0 := c.area.Y + offset(c.area.H-len(lines), c.place.V)
	for i, line := range lines {
		c.write(x0+offset(blockW-Measure(line), c.place.H), y0+i, line, id)
	}
}

// Label writes a single line of text, cut to the area's width with an
// ellipsis when it is too long.
func (c *Canvas) Label(s string, style lipgloss.Style) {
	line, _, _ := strings.Cut(s, "\n")
	if ansi.StringWidth(line) > c.area.W {
		line = ansi.Truncate(line, c.area.W, Ellipsis)
	}
	c.Text(line, style)
}

// String renders the buffer, one line per row. Runs of cells painted with
// the same style are rendered together.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.buf.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		c.renderRow(&sb, y)
	}
	return sb.String()
}

// Plain renders the buffer without any styling
func (c *Canvas) Plain() string {
	lines := make([]string, c.buf.h)
	for y := range lines {
		var sb strings.Builder
		for _, cl := range c.buf.row(y) {
			if cl.width > 0 {
				sb.WriteRune(cl.r)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) renderRow(sb *strings.Builder, y int) {
	row := c.buf.row(y)
	for start := 0; start < len(row); {
		style := row[start].style
		end := start
		var run strings.Builder
		for end < len(row) && row[end].style == style {
			if row[end].width > 0 {
				run.WriteRune(row[end].r)
			}
			end++
		}
		if style == 0 {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(c.buf.styles[style].Render(run.String()))
		}
		start = end
	}
}

func (b *buffer) row(y int) []cell {
	return b.cells[y*b.w : (y+1)*b.w]
}

// offset is how far content moves inside slack cells at position p,
// rounded like lipgloss.Place. Content never moves before the start.
func offset(slack int, p lipgloss.Position) int {
	if slack <= 0 {
		return 0
	}
	return int(math.Round(float64(slack) * float64(p)))
}

// sanitize removes escape sequences and tabs that would desynchronise the
// cell buffer from the terminal.
func sanitize(s string) string {
	return strings.ReplaceAll(ansi.Strip(s), "\t", "    ")
}
