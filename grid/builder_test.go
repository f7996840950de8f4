package grid

import (
	"errors"
	"testing"

	"github.com/young1lin/termgrid/layout"
)

// expectViolation runs fn and returns the error it panicked with
func expectViolation(t *testing.T, fn func()) error {
	t.Helper()
	var got error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok {
				t.Fatalf("panic value %v (%T) is not an error", r, r)
			}
			got = err
		}()
		fn()
	}()
	if got == nil {
		t.Fatal("expected a panic, got none")
	}
	return got
}

func TestCellBeforeRowPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder)
	}{
		{"Cell", func(b *Builder) { b.Cell(layout.Exact(1)) }},
		{"Cells", func(b *Builder) { b.Cells(layout.Exact(1), 3) }},
		{"Nest", func(b *Builder) { b.Nest(layout.Exact(1), New()) }},
		{"NestLast", func(b *Builder) { b.NestLast(New()) }},
		{"Align", func(b *Builder) { b.Align(layout.AlignEnd) }},
		{"RowClip", func(b *Builder) { b.RowClip(true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := expectViolation(t, func() { tt.fn(New()) })
			if !errors.Is(err, ErrNoRow) {
				t.Errorf("panic error = %v, want ErrNoRow", err)
			}
		})
	}
}

func TestNestingMissingCellPanics(t *testing.T) {
	err := expectViolation(t, func() {
		New().Row(layout.Remainder()).NestLast(New())
	})
	if !errors.Is(err, ErrNoCell) {
		t.Errorf("NestLast on empty row: error = %v, want ErrNoCell", err)
	}

	err = expectViolation(t, func() {
		New().Row(layout.Remainder()).Cell(layout.Remainder()).NestAt(0, 1, New())
	})
	if !errors.Is(err, ErrNoCell) {
		t.Errorf("NestAt out of range: error = %v, want ErrNoCell", err)
	}
	if errors.Is(err, ErrNoRow) {
		t.Error("NestAt out of range should not report ErrNoRow")
	}

	err = expectViolation(t, func() {
		New().Row(layout.Remainder()).Nest(layout.Remainder(), nil)
	})
	if !errors.Is(err, ErrNoCell) {
		t.Errorf("Nest(nil): error = %v, want ErrNoCell", err)
	}

	err = expectViolation(t, func() {
		New().Row(layout.Remainder()).Cells(layout.Remainder(), -1)
	})
	if !errors.Is(err, ErrNoCell) {
		t.Errorf("Cells(-1): error = %v, want ErrNoCell", err)
	}
}

func TestLeaves(t *testing.T) {
	pair := New().Row(layout.Remainder()).Cells(layout.Remainder(), 2)

	tests := []struct {
		name string
		b    *Builder
		want int
	}{
		{"empty", New(), 0},
		{"row without cells", New().Row(layout.Remainder()), 0},
		{"flat", New().Row(layout.Exact(1)).Cells(layout.Exact(1), 3).Row(layout.Exact(1)).Cell(layout.Exact(1)), 4},
		{"nested pair", New().Row(layout.Remainder()).Cell(layout.Remainder()).Nest(layout.Remainder(), pair).Cell(layout.Remainder()), 4},
		{"empty nested grid", New().Row(layout.Remainder()).Cell(layout.Remainder()).Nest(layout.Remainder(), New()), 1},
		{"two levels", New().Row(layout.Remainder()).Nest(layout.Remainder(), New().Row(layout.Remainder()).Nest(layout.Remainder(), pair).Cell(layout.Remainder())), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Leaves(); got != tt.want {
				t.Errorf("Leaves() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNestCopiesSubGrid(t *testing.T) {
	sub := New().Row(layout.Remainder()).Cell(layout.Remainder())
	parent := New().Row(layout.Remainder()).Nest(layout.Remainder(), sub)

	sub.Cells(layout.Remainder(), 5)

	if got := parent.Leaves(); got != 1 {
		t.Errorf("parent Leaves() after changing sub = %d, want 1", got)
	}
}

func TestNestSelfIsSnapshot(t *testing.T) {
	b := New().Row(layout.Remainder()).Cell(layout.Remainder())
	b.Nest(layout.Remainder(), b)

	// The nested copy was taken before the nesting cell existed.
	if got := b.Leaves(); got != 2 {
		t.Errorf("Leaves() = %d, want 2", got)
	}
}

func TestNestLastReplacesOnlyLastCell(t *testing.T) {
	quad := New().
		Row(layout.Remainder()).Cells(layout.Remainder(), 2).
		Row(layout.Remainder()).Cells(layout.Remainder(), 2)

	b := New().Row(layout.Remainder()).Cells(layout.Remainder(), 2).NestLast(quad)
	if got := b.Leaves(); got != 5 {
		t.Errorf("Leaves() = %d, want 5", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New().Row(layout.Exact(2), WithClip(true)).Cell(layout.Exact(3))
	c := b.Clone()

	c.RowClip(false).Cell(layout.Exact(4)).Row(layout.Remainder())

	if b.Rows() != 1 || b.Leaves() != 1 {
		t.Errorf("original changed: rows=%d leaves=%d", b.Rows(), b.Leaves())
	}
	if !*b.rows[0].clip {
		t.Error("original row clip changed through clone")
	}
	if c.Rows() != 2 || c.Leaves() != 2 {
		t.Errorf("clone: rows=%d leaves=%d, want 2 and 2", c.Rows(), c.Leaves())
	}
}

func TestZeroValueBuilder(t *testing.T) {
	var b Builder
	b.Row(layout.Remainder()).Cell(layout.Remainder())

	slots := b.Layout(layout.NewRect(0, 0, 4, 2))
	if len(slots) != 1 || slots[0].Area != layout.NewRect(0, 0, 4, 2) {
		t.Errorf("Layout() = %+v", slots)
	}
}

func TestClipAllReachesNestedGrids(t *testing.T) {
	inner := New().Row(layout.Remainder(), WithClip(false)).Cells(layout.Remainder(), 2)
	b := New()
	b.Row(layout.Exact(1)).Cell(layout.Remainder())
	b.Row(layout.Remainder(), WithClip(false)).Nest(layout.Remainder(), inner)

	b.ClipAll(true)

	slots := b.Layout(layout.NewRect(0, 0, 8, 4))
	if len(slots) != 3 {
		t.Fatalf("Layout() returned %d slots, want 3", len(slots))
	}
	for i, s := range slots {
		if !s.Clip {
			t.Errorf("slot %d (depth %d) is not clipped", i, s.Depth())
		}
	}
	if inner.IsClipped() || *inner.rows[0].clip {
		t.Error("ClipAll must not reach the grid passed to Nest")
	}
}
