package layout

import (
	"fmt"
	"math"
)

// Kind identifies how a Size turns available space into an extent
type Kind int

const (
	// KindAbsolute uses a fixed number of cells
	KindAbsolute Kind = iota
	// KindRelative uses a fraction of the total space
	KindRelative
	// KindRemainder shares whatever space the other sizes leave
	KindRemainder
)

func (k Kind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindRelative:
		return "relative"
	case KindRemainder:
		return "remainder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Unbounded is the upper bound of a Size without a maximum
const Unbounded = math.MaxInt

// Size is the strategy a row or cell uses to claim space along one axis.
// Sizes are values: the modifiers return a changed copy.
type Size struct {
	kind     Kind
	initial  int
	fraction float64
	min, max int
}

// Exact creates a Size of exactly n cells
func Exact(n int) Size {
	n = max(n, 0)
	return Size{kind: KindAbsolute, initial: n, min: n, max: n}
}

// Initial creates an absolute Size of n cells with an open range
func Initial(n int) Size {
	return Size{kind: KindAbsolute, initial: max(n, 0), max: Unbounded}
}

// Relative creates a Size taking fraction of the total space.
// It panics when fraction lies outside [0, 1].
func Relative(fraction float64) Size {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		panic(fmt.Sprintf("layout: relative fraction %v outside [0, 1]", fraction))
	}
	return Size{kind: KindRelative, fraction: fraction, max: Unbounded}
}

// Remainder creates a Size that shares the space left by the other sizes
func Remainder() Size {
	return Size{kind: KindRemainder, max: Unbounded}
}

// AtLeast returns the size with a lower bound of n cells
func (s Size) AtLeast(n int) Size {
	s.min = max(n, 0)
	if s.max < s.min {
		s.max = s.min
	}
	return s
}

// AtMost returns the size with an upper bound of n cells
func (s Size) AtMost(n int) Size {
	s.max = max(n, 0)
	if s.min > s.max {
		s.min = s.max
	}
	return s
}

// Kind returns the size's strategy
func (s Size) Kind() Kind {
	return s.kind
}

// Fraction returns the fraction of a relative size
func (s Size) Fraction() float64 {
	return s.fraction
}

// InitialCells returns the cell count of an absolute size
func (s Size) InitialCells() int {
	return s.initial
}

// Range returns the size's bounds. An unbounded maximum is Unbounded.
func (s Size) Range() (lo, hi int) {
	return s.min, s.max
}

// IsExact reports whether the size is absolute with a collapsed range
func (s Size) IsExact() bool {
	return s.kind == KindAbsolute && s.min == s.initial && s.max == s.initial
}

func (s Size) clamp(n int) int {
	if n < s.min {
		return s.min
	}
	if n > s.max {
		return s.max
	}
	return n
}
