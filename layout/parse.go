package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSize parses the textual form of a Size.
//
//	12        exact
//	~12       initial (absolute, open range)
//	30%       relative
//	*         remainder
//
// Every form except exact may be followed by a range: "min..max", "min.." or
// "..max", e.g. "* 3..20" or "25% ..40".
func ParseSize(text string) (Size, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields) > 2 {
		return Size{}, fmt.Errorf("layout: invalid size %q", text)
	}

	base := fields[0]
	var size Size
	switch {
	case base == "*":
		size = Remainder()
	case strings.HasPrefix(base, "~"):
		n, err := parseCells(base[1:])
		if err != nil {
			return Size{}, fmt.Errorf("layout: invalid size %q: %w", text, err)
		}
		size = Initial(n)
	case strings.HasSuffix(base, "%"):
		fraction, err := parsePercent(strings.TrimSuffix(base, "%"))
		if err != nil {
			return Size{}, fmt.Errorf("layout: invalid size %q: %w", text, err)
		}
		size = Relative(fraction)
	default:
		n, err := parseCells(base)
		if err != nil {
			return Size{}, fmt.Errorf("layout: invalid size %q: %w", text, err)
		}
		if len(fields) == 2 {
			return Size{}, fmt.Errorf("layout: invalid size %q: exact sizes take no range", text)
		}
		return Exact(n), nil
	}

	if len(fields) == 2 {
		lo, hi, err := parseRange(fields[1])
		if err != nil {
			return Size{}, fmt.Errorf("layout: invalid size %q: %w", text, err)
		}
		size = size.AtLeast(lo).AtMost(hi)
	}
	return size, nil
}

// MustParseSize is like ParseSize but panics on error
func MustParseSize(text string) Size {
	size, err := ParseSize(text)
	if err != nil {
		panic(err)
	}
	return size
}

// String returns the textual form accepted by ParseSize
func (s Size) String() string {
	var base string
	switch s.kind {
	case KindRemainder:
		base = "*"
	case KindRelative:
		base = formatPercent(s.fraction) + "%"
	default:
		if s.IsExact() {
			return strconv.Itoa(s.initial)
		}
		base = "~" + strconv.Itoa(s.initial)
	}

	switch {
	case s.min > 0 && s.max != Unbounded:
		return fmt.Sprintf("%s %d..%d", base, s.min, s.max)
	case s.min > 0:
		return fmt.Sprintf("%s %d..", base, s.min)
	case s.max != Unbounded:
		return fmt.Sprintf("%s ..%d", base, s.max)
	}
	return base
}

// parsePercent converts a percentage to a fraction. The decimal point is
// moved in the text so that formatPercent output parses back exactly.
func parsePercent(text string) (float64, error) {
	pct, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("percentage %s is not a finite number", text)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("percentage outside 0..100")
	}
	if strings.ContainsAny(text, "eEpPxX") {
		return pct / 100, nil
	}
	return strconv.ParseFloat(text+"e-2", 64)
}

// formatPercent writes fraction*100 using the shortest decimal form of
// fraction, shifted two places
func formatPercent(fraction float64) string {
	s := strconv.FormatFloat(fraction, 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	frac += "00"
	digits := strings.TrimLeft(whole+frac[:2], "0")
	if digits == "" {
		digits = "0"
	}
	if rest := strings.TrimRight(frac[2:], "0"); rest != "" {
		return digits + "." + rest
	}
	return digits
}

func parseCells(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative cell count %d", n)
	}
	return n, nil
}

func parseRange(text string) (lo, hi int, err error) {
	from, to, ok := strings.Cut(text, "..")
	if !ok || (from == "" && to == "") {
		return 0, 0, fmt.Errorf("range %q: want min..max", text)
	}
	hi = Unbounded
	if from != "" {
		if lo, err = parseCells(from); err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", text, err)
		}
	}
	if to != "" {
		if hi, err = parseCells(to); err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", text, err)
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("range %q: min exceeds max", text)
	}
	return lo, hi, nil
}
