package layout

import (
	"reflect"
	"testing"
)

func TestSizingLengths(t *testing.T) {
	tests := []struct {
		name    string
		sizes   Sizing
		total   int
		spacing int
		want    []int
	}{
		{
			name:  "empty",
			sizes: nil,
			total: 10,
			want:  nil,
		},
		{
			name:  "exact only",
			sizes: Sizing{Exact(3), Exact(4)},
			total: 20,
			want:  []int{3, 4},
		},
		{
			name:  "exact overflow is kept",
			sizes: Sizing{Exact(15), Exact(15)},
			total: 20,
			want:  []int{15, 15},
		},
		{
			name:  "single remainder takes the rest",
			sizes: Sizing{Exact(5), Remainder()},
			total: 20,
			want:  []int{5, 15},
		},
		{
			name:  "remainders share evenly",
			sizes: Sizing{Remainder(), Remainder()},
			total: 20,
			want:  []int{10, 10},
		},
		{
			name:  "leftover goes to leading remainders",
			sizes: Sizing{Remainder(), Remainder(), Remainder()},
			total: 20,
			want:  []int{7, 7, 6},
		},
		{
			name:    "spacing is subtracted",
			sizes:   Sizing{Remainder(), Remainder()},
			total:   21,
			spacing: 1,
			want:    []int{10, 10},
		},
		{
			name:  "relative floors",
			sizes: Sizing{Relative(0.25), Remainder()},
			total: 10,
			want:  []int{2, 8},
		},
		{
			name:  "relative clamps to range",
			sizes: Sizing{Relative(0.5).AtMost(4), Remainder()},
			total: 20,
			want:  []int{4, 16},
		},
		{
			name:  "remainder minimum drops out of the share",
			sizes: Sizing{Remainder().AtLeast(8), Remainder(), Remainder()},
			total: 12,
			want:  []int{8, 2, 2},
		},
		{
			name:  "remainder maximum caps the share",
			sizes: Sizing{Remainder().AtMost(3), Exact(2)},
			total: 20,
			want:  []int{3, 2},
		},
		{
			name:  "no space left for remainders",
			sizes: Sizing{Exact(30), Remainder()},
			total: 20,
			want:  []int{30, 0},
		},
		{
			name:  "initial ignores its range",
			sizes: Sizing{Initial(6).AtMost(10), Remainder()},
			total: 10,
			want:  []int{6, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sizes.Lengths(tt.total, tt.spacing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lengths(%d, %d) = %v, want %v", tt.total, tt.spacing, got, tt.want)
			}
		})
	}
}

func TestSizingTotal(t *testing.T) {
	sizes := Sizing{Exact(3), Remainder(), Remainder()}
	if got := sizes.Total(20, 1); got != 20 {
		t.Errorf("Total() = %d, want 20", got)
	}
	if got := (Sizing{}).Total(20, 1); got != 0 {
		t.Errorf("Total() of empty sizing = %d, want 0", got)
	}
}

func TestRelativePanicsOutsideUnitRange(t *testing.T) {
	for _, f := range []float64{-0.1, 1.5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Relative(%v) did not panic", f)
				}
			}()
			Relative(f)
		}()
	}
}

func TestSizeBounds(t *testing.T) {
	s := Remainder().AtLeast(5).AtMost(3)
	lo, hi := s.Range()
	if lo != 3 || hi != 3 {
		t.Errorf("Range() = %d..%d, want 3..3", lo, hi)
	}

	if !Exact(4).IsExact() {
		t.Error("Exact(4).IsExact() = false")
	}
	if Initial(4).IsExact() {
		t.Error("Initial(4).IsExact() = true")
	}
}
