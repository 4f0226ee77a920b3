package precision

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal type represents an exact decimal value with a fixed number of digits
// after the decimal point.
// Decimals are produced by an [Exact] type, which determines the scale.
// Its zero value corresponds to 0 with scale 0.
// Decimal is immutable and designed to be safe for concurrent use by
// multiple goroutines.
type Decimal struct {
	scale int      // number of digits after the decimal point
	coef  *big.Int // value * 10^scale, never modified once assigned
}

// newDecimalUnsafe creates a new decimal taking ownership of the coefficient.
// Use it only if the coefficient is not referenced anywhere else.
func newDecimalUnsafe(scale int, coef *big.Int) Decimal {
	return Decimal{scale: scale, coef: coef}
}

// coefficient returns the coefficient without copying it.
func (d Decimal) coefficient() *big.Int {
	if d.coef == nil {
		return bzero
	}
	return d.coef
}

// Type returns the decimal type that produced d.
func (d Decimal) Type() Exact {
	return Exact{scale: d.scale}
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Coef returns the scaled magnitude of the decimal, that is d * 10^scale.
// The result is a copy and can be modified freely.
// See also constructor [Exact.NewFromCoef].
func (d Decimal) Coef() *big.Int {
	return new(big.Int).Set(d.coefficient())
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.coefficient().Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return newDecimalUnsafe(d.Scale(), new(big.Int).Abs(d.coefficient()))
}

// Invert returns a decimal with the opposite sign.
// The sum of a decimal and its inverse is the [Exact.Empty] element.
func (d Decimal) Invert() Decimal {
	return newDecimalUnsafe(d.Scale(), new(big.Int).Neg(d.coefficient()))
}

// SameScale returns true if decimals have the same scale and can therefore be
// compared and combined.
func (d Decimal) SameScale(e Decimal) bool {
	return d.Scale() == e.Scale()
}

// Concat returns the sum of decimals d and e.
// The sum is always exact.
// See also method [Decimal.Sub].
//
// Concat returns an error if decimals have different scales.
func (d Decimal) Concat(e Decimal) (Decimal, error) {
	if !d.SameScale(e) {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, ErrScaleMismatch)
	}
	return newDecimalUnsafe(d.Scale(), new(big.Int).Add(d.coefficient(), e.coefficient())), nil
}

// Sub returns the difference between decimals d and e.
// It is equivalent to d.Concat(e.Invert()).
//
// Sub returns an error if decimals have different scales.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	if !d.SameScale(e) {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, ErrScaleMismatch)
	}
	return newDecimalUnsafe(d.Scale(), new(big.Int).Sub(d.coefficient(), e.coefficient())), nil
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Cmp returns an error if decimals have different scales.
func (d Decimal) Cmp(e Decimal) (int, error) {
	if !d.SameScale(e) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", d, e, ErrScaleMismatch)
	}
	return d.coefficient().Cmp(e.coefficient()), nil
}

// Equal returns true if decimals are numerically equal.
//
// Equal returns an error if decimals have different scales.
func (d Decimal) Equal(e Decimal) (bool, error) {
	c, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Lte returns true if d is less than or equal to e.
//
// Lte returns an error if decimals have different scales.
func (d Decimal) Lte(e Decimal) (bool, error) {
	c, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the decimal with exactly as many digits after the
// decimal point as its scale.
// The decimal point is omitted when the scale is 0.
//
//	sign        ::= '-'
//	digits      ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand ::= digits '.' digits | digits
//	string      ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	coef := d.coefficient()
	scale := d.Scale()

	digs := coef.Text(10)
	if coef.Sign() < 0 {
		digs = digs[1:]
	}

	// Leading zeros
	if len(digs) <= scale {
		digs = strings.Repeat("0", scale-len(digs)+1) + digs
	}
	intdigs := len(digs) - scale

	buf := make([]byte, 0, len(digs)+2)

	// Sign
	if coef.Sign() < 0 {
		buf = append(buf, '-')
	}

	// Integer digits
	buf = append(buf, digs[:intdigs]...)

	// Fractional digits
	if scale > 0 {
		buf = append(buf, '.')
		buf = append(buf, digs[intdigs:]...)
	}

	return string(buf)
}
