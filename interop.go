package precision

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/holiman/uint256"
	shopspring "github.com/shopspring/decimal"
)

// NewFromGovalues converts a [decimal.Decimal] to a (possibly rounded) decimal.
// Rounding follows the same rules as [Exact.Parse].
// See also method [Decimal.Govalues].
func (x Exact) NewFromGovalues(d decimal.Decimal) (Decimal, error) {
	e, err := x.Parse(d.String())
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %T: %w", d, err)
	}
	return e, nil
}

// Govalues returns the decimal as a [decimal.Decimal] with the same scale.
// See also constructor [Exact.NewFromGovalues].
//
// Govalues returns an error if:
//   - the scale is greater than [decimal.MaxScale];
//   - the coefficient has more than [decimal.MaxPrec] digits.
func (d Decimal) Govalues() (decimal.Decimal, error) {
	if d.Scale() > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v: scale %v: %w", d, d.Scale(), ErrOverflow)
	}
	e, err := decimal.ParseExact(d.String(), d.Scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w: %v", d, ErrOverflow, err)
	}
	return e, nil
}

// NewFromShopspring converts a [shopspring.Decimal] to a (possibly rounded)
// decimal.
// Rounding follows the same rules as [Exact.Parse].
// See also method [Decimal.Shopspring].
func (x Exact) NewFromShopspring(d shopspring.Decimal) (Decimal, error) {
	e, err := x.Parse(d.String())
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %T: %w", d, err)
	}
	return e, nil
}

// Shopspring returns the decimal as a [shopspring.Decimal].
// The conversion is always exact.
// See also constructor [Exact.NewFromShopspring].
func (d Decimal) Shopspring() shopspring.Decimal {
	return shopspring.NewFromBigInt(d.coefficient(), -int32(d.Scale()))
}

// NewFromUint256 returns a decimal whose coefficient is u, that is
// u / 10^scale.
// This is useful for token amounts kept in base units, for example wei with
// a type of scale 18.
// See also method [Decimal.Uint256].
func (x Exact) NewFromUint256(u *uint256.Int) Decimal {
	return newDecimalUnsafe(x.Scale(), u.ToBig())
}

// Uint256 returns the coefficient of the decimal as a [uint256.Int].
// If the decimal is negative or the coefficient does not fit into 256 bits,
// then false is returned.
// See also constructor [Exact.NewFromUint256].
func (d Decimal) Uint256() (*uint256.Int, bool) {
	coef := d.coefficient()
	if coef.Sign() < 0 {
		return nil, false
	}
	u, overflow := uint256.FromBig(coef)
	if overflow {
		return nil, false
	}
	return u, true
}
