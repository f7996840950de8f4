package layout

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want Size
	}{
		{"12", Exact(12)},
		{"~12", Initial(12)},
		{"*", Remainder()},
		{"* 3..", Remainder().AtLeast(3)},
		{"* ..9", Remainder().AtMost(9)},
		{"* 3..9", Remainder().AtLeast(3).AtMost(9)},
		{"50%", Relative(0.5)},
		{"1e1%", Relative(0.1)},
		{"30% 5..20", Relative(0.3).AtLeast(5).AtMost(20)},
		{"  7  ", Exact(7)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if err != nil {
				t.Fatalf("ParseSize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSizeErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "120%", "5 1..2", "* 9..3", "* ..", "* x..", "1 2 3", "NaN%", "nan%", "NaN% 1..3", "Inf%", "-Inf%"} {
		if _, err := ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q) expected error", in)
		}
	}
}

func TestSizeStringRoundTrip(t *testing.T) {
	sizes := []Size{
		Exact(3),
		Initial(4),
		Remainder(),
		Remainder().AtLeast(2),
		Remainder().AtMost(8),
		Relative(0.3),
		Relative(0.25).AtLeast(1).AtMost(10),
		Relative(1.0 / 3),
		Relative(2.0 / 3).AtLeast(1),
		Relative(0.07),
		Relative(1e-7),
		Relative(1),
		Relative(0),
	}

	for _, s := range sizes {
		text := s.String()
		got, err := ParseSize(text)
		if err != nil {
			t.Errorf("ParseSize(%q) error: %v", text, err)
			continue
		}
		if got != s {
			t.Errorf("ParseSize(%q) = %#v, want %#v", text, got, s)
		}
	}
}

func TestMustParseSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSize did not panic on invalid input")
		}
	}()
	MustParseSize("nope")
}
