package grid

import (
	"iter"
	"slices"

	"github.com/young1lin/termgrid/layout"
)

// Coord addresses a cell inside one grid
type Coord struct {
	Row, Cell int
}

// Slot is one claimable cell of a shown grid
type Slot struct {
	// Area is the cell's region after its margin
	Area layout.Rect
	// Row is the region of the row hosting the cell
	Row layout.Rect
	// Path leads from the outermost grid to the cell, one Coord per level
	Path []Coord
	// Clip reports whether painting should be clipped to Area
	Clip      bool
	Placement layout.Placement
}

// Depth returns how many grids the slot is nested in; top-level cells are 0
func (s Slot) Depth() int {
	return len(s.Path) - 1
}

// Slots returns the grid's leaf cells laid out over area, depth first and in
// declaration order. Cells holding a nested grid are replaced by the nested
// grid's own leaves. fallback is the spacing used by grids that did not set
// one. The sequence is computed lazily and may be iterated more than once.
func (b *Builder) Slots(area layout.Rect, fallback layout.Spacing) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		b.walk(area, fallback, nil, yield)
	}
}

// Layout returns every slot of the grid laid out over area
func (b *Builder) Layout(area layout.Rect) []Slot {
	return slices.Collect(b.Slots(area, layout.Spacing{}))
}

func (b *Builder) walk(area layout.Rect, fallback layout.Spacing, path []Coord, yield func(Slot) bool) bool {
	spacing := fallback
	if b.explicitSpacing {
		spacing = b.spacing
	}

	// Rows as columns are laid out in a transposed frame and reflected back.
	frame := area
	if b.rowsAsColumns {
		spacing = spacing.Swap()
		frame = layout.Rect{X: area.X, Y: area.Y, W: area.H, H: area.W}
	}
	orient := func(r layout.Rect) layout.Rect {
		if b.rowsAsColumns {
			return r.Reflect(area.X, area.Y)
		}
		return r
	}

	rowLengths := b.rowSizes().Lengths(frame.H, spacing.Y)
	y := frame.Y
	for ri, row := range b.rows {
		height := rowLengths[ri]
		cells := row.cellSizes()
		x := frame.X + row.align.Offset(frame.W-cells.Total(frame.W, spacing.X))
		cellLengths := cells.Lengths(frame.W, spacing.X)

		clip := b.clip
		if row.clip != nil {
			clip = *row.clip
		}
		rowRect := orient(layout.Rect{X: frame.X, Y: y, W: frame.W, H: height})

		for ci, cell := range row.cells {
			rect := orient(layout.Rect{X: x, Y: y, W: cellLengths[ci], H: height}).Inset(cell.margin)
			cellPath := append(slices.Clip(path), Coord{Row: ri, Cell: ci})

			if cell.nested != nil {
				if !cell.nested.walk(rect, fallback, cellPath, yield) {
					return false
				}
			} else if !yield(Slot{Area: rect, Row: rowRect, Path: cellPath, Clip: clip, Placement: cell.place}) {
				return false
			}
			x += cellLengths[ci] + spacing.X
		}
		y += height + spacing.Y
	}
	return true
}

func (b *Builder) rowSizes() layout.Sizing {
	sizes := make(layout.Sizing, len(b.rows))
	for i, row := range b.rows {
		sizes[i] = row.size
	}
	return sizes
}

func (r rowSpec) cellSizes() layout.Sizing {
	sizes := make(layout.Sizing, len(r.cells))
	for i, cell := range r.cells {
		sizes[i] = cell.size
	}
	return sizes
}
