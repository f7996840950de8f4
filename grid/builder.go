package grid

import "github.com/young1lin/termgrid/layout"

// Builder declares a grid. Declaration methods mutate the builder and return
// it for chaining; nothing is measured until the grid is shown.
//
// The zero value is an empty grid ready for use.
type Builder struct {
	rows []rowSpec

	spacing         layout.Spacing
	explicitSpacing bool
	rowsAsColumns   bool
	clip            bool
	defaultPlace    layout.Placement

	// cells allocated by the most recent Cell, Cells or Nest call
	recent []cellRef
}

type rowSpec struct {
	size  layout.Size
	align layout.Align
	clip  *bool
	cells []cellSpec
}

type cellSpec struct {
	size   layout.Size
	margin layout.Edges
	place  layout.Placement
	nested *Builder
}

type cellRef struct {
	row, cell int
}

// RowOption customises a row when it is started
type RowOption func(*rowSpec)

// WithAlign sets where the row's cells sit when they do not fill the row
func WithAlign(a layout.Align) RowOption {
	return func(r *rowSpec) {
		r.align = a
	}
}

// WithClip overrides the grid's clip setting for the row
func WithClip(clip bool) RowOption {
	return func(r *rowSpec) {
		r.clip = &clip
	}
}

// New creates an empty grid builder
func New() *Builder {
	return &Builder{defaultPlace: layout.DefaultPlacement}
}

// Row starts a new row with the given size along the grid's primary axis.
// Cells declared afterwards belong to this row.
func (b *Builder) Row(size layout.Size, opts ...RowOption) *Builder {
	row := rowSpec{size: size}
	for _, opt := range opts {
		opt(&row)
	}
	b.rows = append(b.rows, row)
	b.recent = nil
	return b
}

// Align sets the alignment of the most recent row, whether or not it has
// cells yet.
func (b *Builder) Align(a layout.Align) *Builder {
	b.currentRow("Align").align = a
	return b
}

// RowClip overrides the grid's clip setting for the most recent row
func (b *Builder) RowClip(clip bool) *Builder {
	b.currentRow("RowClip").clip = &clip
	return b
}

// Cell adds one cell to the most recent row
func (b *Builder) Cell(size layout.Size) *Builder {
	return b.Cells(size, 1)
}

// Cells adds n cells of the same size to the most recent row
func (b *Builder) Cells(size layout.Size, n int) *Builder {
	if n < 0 {
		violation(ErrNoCell, "Cells called with negative count %d", n)
	}
	row := b.currentRow("Cells")
	ri := len(b.rows) - 1
	b.recent = b.recent[:0]
	for i := 0; i < n; i++ {
		row.cells = append(row.cells, cellSpec{size: size, place: b.defaultPlace})
		b.recent = append(b.recent, cellRef{row: ri, cell: len(row.cells) - 1})
	}
	return b
}

// Nest adds a cell of the given size to the most recent row and fills it with
// sub. The sub-grid is copied, so later changes to sub do not affect b.
func (b *Builder) Nest(size layout.Size, sub *Builder) *Builder {
	if sub == nil {
		violation(ErrNoCell, "Nest called with a nil grid")
	}
	nested := sub.Clone()
	b.Cells(size, 1)
	ref := b.recent[0]
	b.rows[ref.row].cells[ref.cell].nested = nested
	return b
}

// NestLast fills the most recently declared cell of the current row with sub.
// After a Cells call only the last of those cells is filled.
func (b *Builder) NestLast(sub *Builder) *Builder {
	row := b.currentRow("NestLast")
	if len(row.cells) == 0 {
		violation(ErrNoCell, "NestLast called on row %d which has no cells", len(b.rows)-1)
	}
	return b.NestAt(len(b.rows)-1, len(row.cells)-1, sub)
}

// NestAt fills the cell at the given row and cell index with sub
func (b *Builder) NestAt(row, cell int, sub *Builder) *Builder {
	if sub == nil {
		violation(ErrNoCell, "NestAt called with a nil grid")
	}
	if row < 0 || row >= len(b.rows) || cell < 0 || cell >= len(b.rows[row].cells) {
		violation(ErrNoCell, "NestAt(%d, %d) is outside the declared grid", row, cell)
	}
	b.rows[row].cells[cell].nested = sub.Clone()
	return b
}

// Margin gives the cells allocated by the most recent Cell, Cells or Nest
// call a margin. Margins shrink a cell's region without moving its
// neighbours.
func (b *Builder) Margin(e layout.Edges) *Builder {
	for _, ref := range b.recent {
		b.rows[ref.row].cells[ref.cell].margin = e
	}
	return b
}

// Place sets the content placement of the cells allocated by the most recent
// Cell, Cells or Nest call.
func (b *Builder) Place(p layout.Placement) *Builder {
	for _, ref := range b.recent {
		b.rows[ref.row].cells[ref.cell].place = p
	}
	return b
}

// DefaultPlace sets the placement of every cell declared from now on.
// Cells declared earlier keep theirs.
func (b *Builder) DefaultPlace(p layout.Placement) *Builder {
	b.defaultPlace = p
	return b
}

// Clip sets whether painting in this grid's cells is clipped to the cell.
// Rows may override it. The setting does not carry into nested grids.
func (b *Builder) Clip(clip bool) *Builder {
	b.clip = clip
	return b
}

// ClipAll sets the clip default of this grid and of every nested grid, and
// clears row overrides so the setting applies to every cell
func (b *Builder) ClipAll(clip bool) *Builder {
	b.clip = clip
	for i := range b.rows {
		b.rows[i].clip = nil
		for _, cell := range b.rows[i].cells {
			if cell.nested != nil {
				cell.nested.ClipAll(clip)
			}
		}
	}
	return b
}

// Spacing sets the gap between cells (x) and between rows (y). Without it the
// surface's item spacing is used. It does not carry into nested grids.
func (b *Builder) Spacing(x, y int) *Builder {
	b.spacing = layout.Spacing{X: max(x, 0), Y: max(y, 0)}
	b.explicitSpacing = true
	return b
}

// RowsAsColumns lays rows out left-to-right as columns, with their cells
// running top-to-bottom. Declaration and consumption order are unchanged.
// The setting does not carry into nested grids.
func (b *Builder) RowsAsColumns(vertical bool) *Builder {
	b.rowsAsColumns = vertical
	return b
}

// IsRowsAsColumns reports whether rows are laid out as columns
func (b *Builder) IsRowsAsColumns() bool {
	return b.rowsAsColumns
}

// IsClipped reports the grid-wide clip default
func (b *Builder) IsClipped() bool {
	return b.clip
}

// Clone returns a deep copy of the builder
func (b *Builder) Clone() *Builder {
	c := *b
	c.rows = make([]rowSpec, len(b.rows))
	for i, row := range b.rows {
		row.cells = append([]cellSpec(nil), row.cells...)
		if row.clip != nil {
			clip := *row.clip
			row.clip = &clip
		}
		for j, cell := range row.cells {
			if cell.nested != nil {
				row.cells[j].nested = cell.nested.Clone()
			}
		}
		c.rows[i] = row
	}
	c.recent = append([]cellRef(nil), b.recent...)
	return &c
}

// Rows returns the number of declared rows
func (b *Builder) Rows() int {
	return len(b.rows)
}

// Leaves returns the number of cells a consumer can claim: nested grids count
// their own leaves in place of the cell holding them.
func (b *Builder) Leaves() int {
	n := 0
	for _, row := range b.rows {
		for _, cell := range row.cells {
			if cell.nested != nil {
				n += cell.nested.Leaves()
			} else {
				n++
			}
		}
	}
	return n
}

func (b *Builder) currentRow(op string) *rowSpec {
	if len(b.rows) == 0 {
		violation(ErrNoRow, "%s called before Row", op)
	}
	return &b.rows[len(b.rows)-1]
}
