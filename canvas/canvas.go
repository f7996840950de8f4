// Package canvas provides the drawing context grids are shown on: a buffer of
// styled terminal cells with child contexts that can clip painting to their
// area.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/young1lin/termgrid/layout"
)

// cell is one terminal cell. A width of 0 marks the right half of a wide rune.
type cell struct {
	r     rune
	width uint8
	style int
}

type buffer struct {
	w, h   int
	cells  []cell
	styles []lipgloss.Style
}

// Canvas is a drawing context over a region of a shared cell buffer.
// Children share the buffer of the canvas they were created from.
type Canvas struct {
	buf   *buffer
	area  layout.Rect
	clip  layout.Rect
	place layout.Placement
	gap   layout.Spacing
}

// New creates a blank canvas of w by h cells
func New(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	buf := &buffer{
		w:      w,
		h:      h,
		cells:  make([]cell, w*h),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range buf.cells {
		buf.cells[i] = blank(0)
	}
	bounds := layout.NewRect(0, 0, w, h)
	return &Canvas{buf: buf, area: bounds, clip: bounds, place: layout.DefaultPlacement}
}

// Area returns the region this context paints into, in buffer coordinates
func (c *Canvas) Area() layout.Rect {
	return c.area
}

// ClipRect returns the region painting is restricted to
func (c *Canvas) ClipRect() layout.Rect {
	return c.clip
}

// Placement returns how Text positions content inside the area
func (c *Canvas) Placement() layout.Placement {
	return c.place
}

// WithSpacing sets the item spacing grids use when they define none
func (c *Canvas) WithSpacing(x, y int) *Canvas {
	c.gap = layout.Spacing{X: max(x, 0), Y: max(y, 0)}
	return c
}

// ItemSpacing returns the canvas's default gap between grid items
func (c *Canvas) ItemSpacing() layout.Spacing {
	return c.gap
}

// Child returns a context over area. With opts.Clip set, painting through the
// child never leaves area; otherwise it may spill up to the parent's clip.
func (c *Canvas) Child(area layout.Rect, opts layout.ChildOptions) *Canvas {
	clip := c.clip
	if opts.Clip {
		clip = clip.Intersect(area)
	}
	return &Canvas{buf: c.buf, area: area, clip: clip, place: opts.Placement, gap: c.gap}
}

// Inset returns a clipped child over the area shrunk by e, keeping the
// placement. It is the content region inside a border.
func (c *Canvas) Inset(e layout.Edges) *Canvas {
	return c.Child(c.area.Inset(e), layout.ChildOptions{Placement: c.place, Clip: true})
}

// SetString writes s at (x, y) relative to the area's origin and returns the
// display width written. Escape sequences in s are ignored.
func (c *Canvas) SetString(x, y int, s string, style lipgloss.Style) int {
	return c.write(c.area.X+x, c.area.Y+y, sanitize(s), c.buf.addStyle(style))
}

// Fill paints every cell of the area with r
func (c *Canvas) Fill(r rune, style lipgloss.Style) {
	id := c.buf.addStyle(style)
	line := strings.Repeat(string(r), max(c.area.W/max(runewidth.RuneWidth(r), 1), 0))
	for y := c.area.Y; y < c.area.Bottom(); y++ {
		c.write(c.area.X, y, line, id)
	}
}

// Border draws b along the edges of the area
func (c *Canvas) Border(b lipgloss.Border, style lipgloss.Style) {
	a := c.area
	if a.Empty() {
		return
	}
	id := c.buf.addStyle(style)
	right, bottom := a.Right()-1, a.Bottom()-1

	for x := a.X + 1; x < right; x++ {
		c.write(x, a.Y, first(b.Top), id)
		c.write(x, bottom, first(b.Bottom), id)
	}
	for y := a.Y + 1; y < bottom; y++ {
		c.write(a.X, y, first(b.Left), id)
		c.write(right, y, first(b.Right), id)
	}
	c.write(a.X, a.Y, first(b.TopLeft), id)
	c.write(right, a.Y, first(b.TopRight), id)
	c.write(a.X, bottom, first(b.BottomLeft), id)
	c.write(right, bottom, first(b.BottomRight), id)
}

// write puts s on row y starting at column x, dropping anything outside the
// clip rectangle or the buffer.
func (c *Canvas) write(x, y int, s string, style int) int {
	bounds := c.clip.Intersect(layout.NewRect(0, 0, c.buf.w, c.buf.h))
	if y < bounds.Y || y >= bounds.Bottom() {
		return 0
	}

	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= bounds.Right() {
			break
		}
		if x >= bounds.X && x+w <= bounds.Right() {
			c.buf.set(x, y, cell{r: r, width: uint8(w), style: style})
			if w == 2 {
				c.buf.set(x+1, y, cell{width: 0, style: style})
			}
			written += w
		}
		x += w
	}
	return written
}

func (b *buffer) addStyle(style lipgloss.Style) int {
	b.styles = append(b.styles, style)
	return len(b.styles) - 1
}

func (b *buffer) set(x, y int, c cell) {
	i := y*b.w + x
	old := b.cells[i]
	// Overwriting half of a wide rune blanks its other half.
	if old.width == 0 && x > 0 && c.width != 0 {
		b.cells[i-1] = blank(b.cells[i-1].style)
	}
	if old.width == 2 && x+1 < b.w {
		b.cells[i+1] = blank(old.style)
	}
	b.cells[i] = c
}

func blank(style int) cell {
	return cell{r: ' ', width: 1, style: style}
}

func first(s string) string {
	for _, r := range s {
		return string(r)
	}
	return " "
}
