// Package layout provides the geometry and sizing primitives grids are built on
package layout

// Rect represents a rectangle of terminal cells
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new Rect with the given position and dimensions.
// Negative dimensions are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of r and other, or a zero-sized Rect
// positioned at the overlap's origin when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.Right(), other.Right())
	y1 := max(r.Bottom(), other.Bottom())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset returns the rectangle shrunk by the given edges.
// A rectangle never shrinks below zero width or height.
func (r Rect) Inset(e Edges) Rect {
	return NewRect(r.X+e.Left, r.Y+e.Top, r.W-e.Left-e.Right, r.H-e.Top-e.Bottom)
}

// Reflect mirrors the rectangle across the diagonal through origin, so that
// horizontal offsets become vertical ones and widths become heights.
func (r Rect) Reflect(originX, originY int) Rect {
	return Rect{
		X: originX + (r.Y - originY),
		Y: originY + (r.X - originX),
		W: r.H,
		H: r.W,
	}
}

// Edges represents spacing on four sides
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// IsZero reports whether every side is zero
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// Spacing is the gap between neighbouring cells (X) and rows (Y)
type Spacing struct {
	X, Y int
}

// Swap exchanges the horizontal and vertical gaps
func (s Spacing) Swap() Spacing {
	return Spacing{X: s.Y, Y: s.X}
}
