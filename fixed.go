package precision

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// Bounded type represents a decimal type with a fixed number of digits after
// the decimal point, backed by a 64-bit coefficient.
// Values of the type are instances of [Fixed].
// Bounded trades the unlimited range of [Exact] for speed: values are created
// from float64 and the coefficient is limited to [decimal.MaxPrec] digits.
// The zero value is the type of scale 0.
type Bounded struct {
	scale int // number of digits after the decimal point
}

// NewBounded returns the bounded decimal type with the given scale.
//
// NewBounded returns an error if the scale is negative or greater than
// [decimal.MaxScale].
func NewBounded(scale int) (Bounded, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return Bounded{}, fmt.Errorf("creating bounded type with scale %v: %w", scale, ErrInvalidScale)
	}
	return Bounded{scale: scale}, nil
}

// MustNewBounded is like [NewBounded] but panics if the scale is not valid.
// It simplifies safe initialization of global variables holding types.
func MustNewBounded(scale int) Bounded {
	b, err := NewBounded(scale)
	if err != nil {
		panic(fmt.Sprintf("NewBounded(%v) failed: %v", scale, err))
	}
	return b
}

// Scale returns the number of digits after the decimal point.
func (b Bounded) Scale() int {
	return b.scale
}

// New converts a float to a (possibly rounded) fixed-point value.
// The float is multiplied by 10^scale and rounded half away from zero, so the
// result is subject to binary floating-point error: 5.295 becomes 5.30 but
// 1.005 becomes 1.00 at scale 2.
//
// New returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the scaled float does not fit into an int64.
func (b Bounded) New(f float64) (Fixed, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fixed{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidLiteral)
	}
	coef := math.Round(f * math.Pow10(b.Scale()))
	if coef < math.MinInt64 || coef >= math.MaxInt64 {
		return Fixed{}, fmt.Errorf("converting float %v: %w", f, ErrOverflow)
	}
	return b.NewFromCoef(int64(coef))
}

// Of is an alias for [Bounded.New].
func (b Bounded) Of(f float64) (Fixed, error) {
	return b.New(f)
}

// MustOf is like [Bounded.Of] but panics if the float cannot be converted.
// It simplifies safe initialization of global variables holding values.
func (b Bounded) MustOf(f float64) Fixed {
	g, err := b.Of(f)
	if err != nil {
		panic(fmt.Sprintf("Of(%v) failed: %v", f, err))
	}
	return g
}

// NewFromCoef returns a fixed-point value equal to coef / 10^scale, where scale
// is the scale of the type.
// See also method [Fixed.Coef].
func (b Bounded) NewFromCoef(coef int64) (Fixed, error) {
	d, err := decimal.New(coef, b.Scale())
	if err != nil {
		return Fixed{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return newFixedUnsafe(d), nil
}

// Empty returns the identity element of the type, the value 0.
func (b Bounded) Empty() Fixed {
	f, err := b.NewFromCoef(0)
	if err != nil {
		panic(fmt.Sprintf("Empty() failed: %v", err))
	}
	return f
}

// Fixed type represents a fixed-point value produced by a [Bounded] type.
// Its zero value corresponds to 0 with scale 0.
// Fixed is designed to be safe for concurrent use by multiple goroutines.
type Fixed struct {
	value decimal.Decimal // scale of the value is the scale of its type
}

// newFixedUnsafe creates a new fixed-point value without checking the scale.
// Use it only if the scale of d is the scale of the intended type.
func newFixedUnsafe(d decimal.Decimal) Fixed {
	return Fixed{value: d}
}

// Type returns the bounded type that produced f.
func (f Fixed) Type() Bounded {
	return Bounded{scale: f.Scale()}
}

// Scale returns the number of digits after the decimal point.
func (f Fixed) Scale() int {
	return f.value.Scale()
}

// Decimal returns the decimal representation of the value.
func (f Fixed) Decimal() decimal.Decimal {
	return f.value
}

// Coef returns the scaled magnitude of the value, that is f * 10^scale.
// If the result cannot be represented as an int64, then false is returned.
// See also constructor [Bounded.NewFromCoef].
func (f Fixed) Coef() (coef int64, ok bool) {
	u := f.value.Coef()
	if f.value.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data.
func (f Fixed) Float64() (float64, bool) {
	return f.value.Float64()
}

// Exact returns the value as an exact decimal with the same scale.
// The conversion is always exact.
func (f Fixed) Exact() Decimal {
	coef := new(big.Int).SetUint64(f.value.Coef())
	if f.value.IsNeg() {
		coef.Neg(coef)
	}
	return newDecimalUnsafe(f.Scale(), coef)
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fixed) Sign() int {
	return f.value.Sign()
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fixed) IsZero() bool {
	return f.value.IsZero()
}

// IsNeg returns:
//
//	true  if f < 0
//	false otherwise
func (f Fixed) IsNeg() bool {
	return f.value.IsNeg()
}

// IsPos returns:
//
//	true  if f > 0
//	false otherwise
func (f Fixed) IsPos() bool {
	return f.value.IsPos()
}

// Abs returns the absolute value of f.
func (f Fixed) Abs() Fixed {
	return newFixedUnsafe(f.value.Abs())
}

// Invert returns a value with the opposite sign.
func (f Fixed) Invert() Fixed {
	return newFixedUnsafe(f.value.Neg())
}

// SameScale returns true if values have the same scale.
func (f Fixed) SameScale(g Fixed) bool {
	return f.Scale() == g.Scale()
}

// Concat returns the sum of values f and g.
//
// Concat returns an error if:
//   - values have different scales;
//   - the coefficient of the result has more than [decimal.MaxPrec] digits.
func (f Fixed) Concat(g Fixed) (Fixed, error) {
	h, err := f.add(g)
	if err != nil {
		return Fixed{}, fmt.Errorf("computing [%v + %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fixed) add(g Fixed) (Fixed, error) {
	if !f.SameScale(g) {
		return Fixed{}, ErrScaleMismatch
	}
	d, err := f.value.AddExact(g.value, f.Scale())
	if err != nil {
		return Fixed{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return newFixedUnsafe(d), nil
}

// Sub returns the difference between values f and g.
//
// Sub returns an error if:
//   - values have different scales;
//   - the coefficient of the result has more than [decimal.MaxPrec] digits.
func (f Fixed) Sub(g Fixed) (Fixed, error) {
	h, err := f.add(g.Invert())
	if err != nil {
		return Fixed{}, fmt.Errorf("computing [%v - %v]: %w", f, g, err)
	}
	return h, nil
}

// Cmp compares values and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
//
// Cmp returns an error if values have different scales.
func (f Fixed) Cmp(g Fixed) (int, error) {
	if !f.SameScale(g) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", f, g, ErrScaleMismatch)
	}
	return f.value.Cmp(g.value), nil
}

// Equal returns true if values are numerically equal.
//
// Equal returns an error if values have different scales.
func (f Fixed) Equal(g Fixed) (bool, error) {
	c, err := f.Cmp(g)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Lte returns true if f is less than or equal to g.
//
// Lte returns an error if values have different scales.
func (f Fixed) Lte(g Fixed) (bool, error) {
	c, err := f.Cmp(g)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value with exactly as many digits after the
// decimal point as its scale.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fixed) String() string {
	return f.value.String()
}
