package precision

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestNewExact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int{0, 1, 2, 8, 18, 19, 20, 100}
		for _, scale := range tests {
			x, err := NewExact(scale)
			if err != nil {
				t.Errorf("NewExact(%v) failed: %v", scale, err)
				continue
			}
			if got := x.Scale(); got != scale {
				t.Errorf("NewExact(%v).Scale() = %v, want %v", scale, got, scale)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int{-1, -2, -100}
		for _, scale := range tests {
			_, err := NewExact(scale)
			if err == nil {
				t.Errorf("NewExact(%v) did not fail", scale)
				continue
			}
			if !errors.Is(err, ErrInvalidScale) {
				t.Errorf("NewExact(%v) failed with %v, want %v", scale, err, ErrInvalidScale)
			}
		}
	})
}

func TestMustNewExact(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewExact(-1) did not panic")
			}
		}()
		MustNewExact(-1)
	})
}

func TestExact_ZeroValue(t *testing.T) {
	got := Exact{}
	want := MustNewExact(0)
	if got != want {
		t.Errorf("Exact{} = %v, want %v", got, want)
	}
}

func TestExact_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			scale int
			lit   string
			want  string
		}{
			// Padding
			{0, "0", "0"},
			{2, "0", "0.00"},
			{8, "0", "0.00000000"},
			{2, "0.2", "0.20"},
			{2, "9.87", "9.87"},
			{2, "44.20", "44.20"},
			{3, "0.110", "0.110"},
			{4, "1.5", "1.5000"},

			// Signs
			{2, "-42.09", "-42.09"},
			{2, "+42.09", "42.09"},
			{2, "-0.5", "-0.50"},
			{2, "-0", "0.00"},
			{2, "-0.00", "0.00"},
			{0, "-7", "-7"},

			// Missing parts
			{2, ".5", "0.50"},
			{2, "-.5", "-0.50"},
			{2, "5.", "5.00"},
			{0, "5.", "5"},
			{2, "007.10", "7.10"},
			{2, "", "0.00"},
			{2, ".", "0.00"},
			{0, "", "0"},
			{0, ".", "0"},

			// Rounding
			{2, "5.295", "5.30"},
			{2, "5.299", "5.30"},
			{2, "5.294", "5.29"},
			{2, "0.999", "1.00"},
			{2, "-1.995", "-2.00"},
			{2, "-0.005", "-0.01"},
			{2, "-0.004", "0.00"},
			{0, "100.99", "101"},
			{0, "17.01", "17"},
			{0, "0.5", "1"},
			{0, "-0.5", "-1"},
			{0, "0.4", "0"},
			{1, "100.99", "101.0"},
			{1, "179.11", "179.1"},
			{1, "0.15", "0.2"},
			{1, "0.14999", "0.1"},
			{1, "0.04999", "0.0"},
			{18, "555.1234567890123456784", "555.123456789012345678"},
			{18, "666.8765432109876543205", "666.876543210987654321"},

			// Large values
			{18, "5.123456789012345678", "5.123456789012345678"},
			{2, "123456789012345678901234567890.12", "123456789012345678901234567890.12"},
			{2, "-123456789012345678901234567890.125", "-123456789012345678901234567890.13"},
			{45, "0.5", "0.5" + strings.Repeat("0", 44)},
			{45, "1", "1." + strings.Repeat("0", 45)},
		}
		for _, tt := range tests {
			x := MustNewExact(tt.scale)
			got, err := x.Parse(tt.lit)
			if err != nil {
				t.Errorf("Exact(%v).Parse(%q) failed: %v", tt.scale, tt.lit, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Exact(%v).Parse(%q) = %q, want %q", tt.scale, tt.lit, got, tt.want)
			}
			if got.Scale() != tt.scale {
				t.Errorf("Exact(%v).Parse(%q).Scale() = %v, want %v", tt.scale, tt.lit, got.Scale(), tt.scale)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"sign only 1":    "-",
			"sign only 2":    "+",
			"sign and point": "-.",
			"plus and point": "+.",
			"double point":   "1.2.3",
			"double sign":    "--1",
			"letters":        "abc",
			"exponent":       "1e5",
			"hex":            "0x10",
			"comma":          "1,5",
			"leading space":  " 1",
			"trailing space": "1 ",
			"inner sign":     "1.-5",
			"underscore":     "1_000",
			"non-ascii":      "١",
		}
		x := MustNewExact(2)
		for name, lit := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := x.Parse(lit)
				if err == nil {
					t.Errorf("Exact(2).Parse(%q) did not fail", lit)
					return
				}
				if !errors.Is(err, ErrInvalidLiteral) {
					t.Errorf("Exact(2).Parse(%q) failed with %v, want %v", lit, err, ErrInvalidLiteral)
				}
			})
		}
	})
}

func TestExact_Of(t *testing.T) {
	x := MustNewExact(2)
	tests := []struct {
		lit, want string
	}{
		{"5.295", "5.30"},
		{"4.73", "4.73"},
		{"-0.1", "-0.10"},
	}
	for _, tt := range tests {
		got, err := x.Of(tt.lit)
		if err != nil {
			t.Errorf("Of(%q) failed: %v", tt.lit, err)
			continue
		}
		want, err := x.Parse(tt.lit)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.lit, err)
			continue
		}
		if got.String() != tt.want || got.String() != want.String() {
			t.Errorf("Of(%q) = %q, want %q", tt.lit, got, tt.want)
		}
	}
}

func TestExact_MustOf(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustOf(\"x\") did not panic")
			}
		}()
		MustNewExact(2).MustOf("x")
	})
}

func TestExact_Empty(t *testing.T) {
	tests := []struct {
		scale int
		want  string
	}{
		{0, "0"},
		{1, "0.0"},
		{2, "0.00"},
		{8, "0.00000000"},
		{18, "0.000000000000000000"},
	}
	for _, tt := range tests {
		got := MustNewExact(tt.scale).Empty()
		if got.String() != tt.want {
			t.Errorf("Exact(%v).Empty() = %q, want %q", tt.scale, got, tt.want)
		}
		if !got.IsZero() {
			t.Errorf("Exact(%v).Empty().IsZero() = false, want true", tt.scale)
		}
		if got.Coef().Sign() != 0 {
			t.Errorf("Exact(%v).Empty().Coef() = %v, want 0", tt.scale, got.Coef())
		}
	}
}

func TestExact_NewFromCoef(t *testing.T) {
	tests := []struct {
		scale int
		coef  int64
		want  string
	}{
		{0, 0, "0"},
		{0, -7, "-7"},
		{2, 5, "0.05"},
		{2, -5, "-0.05"},
		{2, 987, "9.87"},
		{2, -100, "-1.00"},
		{3, 1234, "1.234"},
		{8, 1, "0.00000001"},
	}
	for _, tt := range tests {
		coef := big.NewInt(tt.coef)
		got := MustNewExact(tt.scale).NewFromCoef(coef)
		if got.String() != tt.want {
			t.Errorf("Exact(%v).NewFromCoef(%v) = %q, want %q", tt.scale, tt.coef, got, tt.want)
		}
		// The coefficient must be copied.
		coef.SetInt64(42)
		if got.String() != tt.want {
			t.Errorf("Exact(%v).NewFromCoef(%v) changed to %q after modifying argument", tt.scale, tt.coef, got)
		}
	}
}

func FuzzExact_Parse(f *testing.F) {
	seeds := []string{
		"0", "-0", "0.2", "9.87", "-42.09", "5.295", "0.14999", ".5", "5.",
		"555.1234567890123456784", "123456789012345678901234567890.125",
	}
	for _, s := range seeds {
		for _, scale := range []int{0, 1, 2, 3, 8, 18} {
			f.Add(s, scale)
		}
	}

	f.Fuzz(
		func(t *testing.T, lit string, scale int) {
			if scale < 0 || scale > 50 {
				t.Skip()
				return
			}
			x := MustNewExact(scale)
			d, err := x.Parse(lit)
			if err != nil {
				t.Skip()
				return
			}
			s := d.String()
			// Number of digits after the decimal point
			frac := 0
			if i := strings.IndexByte(s, '.'); i >= 0 {
				frac = len(s) - i - 1
			}
			if frac != scale {
				t.Errorf("Exact(%v).Parse(%q).String() = %q, want %v digits after the decimal point", scale, lit, s, scale)
				return
			}
			// Round trip
			e, err := x.Parse(s)
			if err != nil {
				t.Errorf("Exact(%v).Parse(%q) failed: %v", scale, s, err)
				return
			}
			if ok, err := d.Equal(e); err != nil || !ok {
				t.Errorf("Exact(%v).Parse(%q) = %q, whereas Exact(%v).Parse(%q) = %q", scale, s, e, scale, lit, d)
			}
		},
	)
}
