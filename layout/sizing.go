package layout

import "math"

// Sizing is an ordered strip of sizes split out of one axis
type Sizing []Size

// Lengths converts the sizes into concrete extents along an axis of length
// total, leaving spacing cells between neighbours.
//
// Absolute sizes always get their initial value and relative sizes their
// fraction of total, clamped to their range. Remainder sizes share what is
// left. A remainder whose minimum exceeds the even share takes its minimum
// and drops out of the share. Overflow is never corrected.
func (s Sizing) Lengths(total, spacing int) []int {
	if len(s) == 0 {
		return nil
	}

	remainders := 0
	used := spacing * (len(s) - 1)
	for _, size := range s {
		switch size.kind {
		case KindAbsolute:
			used += size.initial
		case KindRelative:
			used += size.relative(total)
		case KindRemainder:
			remainders++
		}
	}

	share, extra, avg := 0, 0, 0
	if remainders > 0 {
		left := total - used
		avg = max(0, floorDiv(left, remainders))
		sharing := remainders
		for _, size := range s {
			if size.kind == KindRemainder && avg < size.min {
				left -= size.min
				sharing--
			}
		}
		if sharing > 0 && left > 0 {
			share = left / sharing
			extra = left - share*sharing
		}
	}

	lengths := make([]int, len(s))
	for i, size := range s {
		switch size.kind {
		case KindAbsolute:
			lengths[i] = size.initial
		case KindRelative:
			lengths[i] = size.relative(total)
		case KindRemainder:
			n := share
			// Leftover cells from the integer split go to the leading
			// remainders that still take part in the share.
			if extra > 0 && avg >= size.min && n+1 <= size.max {
				n++
				extra--
			}
			lengths[i] = size.clamp(n)
		}
	}
	return lengths
}

// Total returns the extent the sizes claim inside total, spacing included
func (s Sizing) Total(total, spacing int) int {
	lengths := s.Lengths(total, spacing)
	if len(lengths) == 0 {
		return 0
	}
	sum := spacing * (len(lengths) - 1)
	for _, n := range lengths {
		sum += n
	}
	return sum
}

func (s Size) relative(total int) int {
	return s.clamp(int(math.Floor(float64(total) * s.fraction)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
