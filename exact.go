package precision

import (
	"fmt"
	"math/big"
)

// Exact type represents a decimal type with a fixed number of digits after
// the decimal point.
// Values of the type are instances of [Decimal] backed by an arbitrary-precision
// integer, so there is no upper bound on their magnitude.
// Two values can be compared and combined only if they were produced by types
// with the same scale.
// The zero value is the type of scale 0.
// Exact is designed to be safe for concurrent use by multiple goroutines.
type Exact struct {
	scale int // number of digits after the decimal point
}

// NewExact returns the decimal type with the given scale.
//
// NewExact returns an error if the scale is negative.
func NewExact(scale int) (Exact, error) {
	if scale < 0 {
		return Exact{}, fmt.Errorf("creating exact type with scale %v: %w", scale, ErrInvalidScale)
	}
	return Exact{scale: scale}, nil
}

// MustNewExact is like [NewExact] but panics if the scale is not valid.
// It simplifies safe initialization of global variables holding types.
func MustNewExact(scale int) Exact {
	x, err := NewExact(scale)
	if err != nil {
		panic(fmt.Sprintf("NewExact(%v) failed: %v", scale, err))
	}
	return x
}

// Scale returns the number of digits after the decimal point.
func (x Exact) Scale() int {
	return x.scale
}

// Parse converts a string to a (possibly rounded) decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	5.
//
// Missing integer or fractional digits are treated as zeros, so "" and "."
// both parse as 0.
// If the string has more digits after the decimal point than the scale of the
// type, the excess is rounded half up by looking only at the first discarded
// digit: "5.295" becomes 5.30 at scale 2, while "0.14999" becomes 0.1 at
// scale 1.
//
// Parse returns an error if the string does not represent a decimal number
// or consists of a sign alone.
func (x Exact) Parse(lit string) (Decimal, error) {
	coef, err := parseCoef(lit, x.Scale())
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", lit, err)
	}
	return newDecimalUnsafe(x.Scale(), coef), nil
}

// Of is an alias for [Exact.Parse].
func (x Exact) Of(lit string) (Decimal, error) {
	return x.Parse(lit)
}

// MustOf is like [Exact.Of] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func (x Exact) MustOf(lit string) Decimal {
	d, err := x.Of(lit)
	if err != nil {
		panic(fmt.Sprintf("Of(%q) failed: %v", lit, err))
	}
	return d
}

// Empty returns the identity element of the type, the decimal 0.
// See also method [Decimal.Invert].
func (x Exact) Empty() Decimal {
	return newDecimalUnsafe(x.Scale(), new(big.Int))
}

// NewFromCoef returns a decimal equal to coef / 10^scale, where scale is
// the scale of the type.
// The coefficient is copied.
// See also method [Decimal.Coef].
func (x Exact) NewFromCoef(coef *big.Int) Decimal {
	return newDecimalUnsafe(x.Scale(), new(big.Int).Set(coef))
}

// parseCoef converts a decimal literal into a coefficient with exactly
// scale digits after the decimal point.
func parseCoef(lit string, scale int) (*big.Int, error) {
	var (
		pos    int
		width  int
		neg    bool
		signed bool
		whole  string
		frac   string
	)

	width = len(lit)

	// Sign
	switch {
	case pos == width:
		// skip
	case lit[pos] == '-':
		neg = true
		signed = true
		pos++
	case lit[pos] == '+':
		signed = true
		pos++
	}

	// Integer
	start := pos
	for pos < width && isDigit(lit[pos]) {
		pos++
	}
	whole = lit[start:pos]

	// Fraction
	if pos < width && lit[pos] == '.' {
		pos++
		start = pos
		for pos < width && isDigit(lit[pos]) {
			pos++
		}
		frac = lit[start:pos]
	}

	if pos != width {
		return nil, fmt.Errorf("invalid character %q: %w", lit[pos], ErrInvalidLiteral)
	}
	if signed && whole == "" && frac == "" {
		return nil, fmt.Errorf("sign without digits: %w", ErrInvalidLiteral)
	}

	coef := setDigits(new(big.Int), whole)
	lsh(coef, coef, scale)
	coef.Add(coef, roundFrac(frac, scale))
	if neg {
		coef.Neg(coef)
	}
	return coef, nil
}

// roundFrac converts fractional digits into an integer with exactly scale digits.
// Shorter fractions are zero-padded to the right.
// Longer fractions are truncated to scale digits and then incremented by one
// if the first discarded digit is 5 or greater; later digits are ignored.
func roundFrac(frac string, scale int) *big.Int {
	if len(frac) > scale {
		z := setDigits(new(big.Int), frac[:scale])
		if frac[scale] >= '5' {
			z.Add(z, bone)
		}
		return z
	}
	z := setDigits(new(big.Int), frac)
	return lsh(z, z, scale-len(frac))
}
