package grid

import (
	"fmt"
	"iter"

	"github.com/young1lin/termgrid/layout"
)

// Surface is the drawing context a grid is shown on. Child returns the
// context a single cell paints into.
type Surface[S any] interface {
	Child(area layout.Rect, opts layout.ChildOptions) S
}

// Spacer is implemented by surfaces that define a default gap between items.
// Grids without explicit spacing use it.
type Spacer interface {
	ItemSpacing() layout.Spacing
}

// Grid is the cursor handed to the consumer of Show. Each Cell or Empty call
// claims the next leaf cell in declaration order.
type Grid[S Surface[S]] struct {
	surface  S
	next     func() (Slot, bool)
	total    int
	consumed int

	maxX, maxY int
}

// Show lays b out over area on surface and calls fn with a cursor over the
// grid's cells. It returns the region covered by the cells fn claimed,
// anchored at area's origin.
//
// Show does not modify b: showing the same builder against the same area
// always produces the same regions.
func Show[S Surface[S]](b *Builder, surface S, area layout.Rect, fn func(*Grid[S])) layout.Rect {
	var fallback layout.Spacing
	if sp, ok := any(surface).(Spacer); ok {
		fallback = sp.ItemSpacing()
	}

	next, stop := iter.Pull(b.Slots(area, fallback))
	defer stop()

	g := &Grid[S]{
		surface: surface,
		next:    next,
		total:   b.Leaves(),
		maxX:    area.X,
		maxY:    area.Y,
	}
	fn(g)
	return layout.NewRect(area.X, area.Y, g.maxX-area.X, g.maxY-area.Y)
}

// Cell claims the next cell and paints into it. Painting is clipped to the
// cell when the cell's row asks for it.
func (g *Grid[S]) Cell(paint func(S)) {
	slot := g.pop()
	if paint == nil {
		return
	}
	paint(g.surface.Child(slot.Area, layout.ChildOptions{
		Placement: slot.Placement,
		Clip:      slot.Clip,
	}))
}

// Empty claims the next cell and leaves it blank
func (g *Grid[S]) Empty() {
	g.pop()
}

// Len returns the number of cells declared for the grid
func (g *Grid[S]) Len() int {
	return g.total
}

// Remaining returns the number of cells not yet claimed
func (g *Grid[S]) Remaining() int {
	return g.total - g.consumed
}

// Consumed returns the number of cells claimed so far
func (g *Grid[S]) Consumed() int {
	return g.consumed
}

func (g *Grid[S]) pop() Slot {
	slot, ok := g.next()
	if !ok {
		panic(fmt.Errorf("grid: %w (%d pre-allocated)", ErrTooManyCells, g.total))
	}
	g.consumed++
	g.maxX = max(g.maxX, slot.Area.Right())
	g.maxY = max(g.maxY, slot.Area.Bottom())
	return slot
}
