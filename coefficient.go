package precision

import (
	"fmt"
	"math/big"
)

var (
	bzero = big.NewInt(0)
	bone  = big.NewInt(1)
	bten  = big.NewInt(10)
)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// Its elements must never be modified.
var bpow10 = newPow10Table(40)

func newPow10Table(n int) []*big.Int {
	t := make([]*big.Int, n)
	t[0] = big.NewInt(1)
	for i := 1; i < n; i++ {
		t[i] = new(big.Int).Mul(t[i-1], bten)
	}
	return t
}

// pow10 returns 10^x.
// The result may be shared and must not be modified.
func pow10(x int) *big.Int {
	if x < len(bpow10) {
		return bpow10[x]
	}
	return new(big.Int).Exp(bten, big.NewInt(int64(x)), nil)
}

// lsh (Left Shift) calculates z = x * 10^shift.
func lsh(z, x *big.Int, shift int) *big.Int {
	if shift == 0 {
		return z.Set(x)
	}
	return z.Mul(x, pow10(shift))
}

// setDigits sets z to the value of a string of decimal digits.
// An empty string is 0.
// The caller must make sure that s contains only the characters '0' to '9'.
func setDigits(z *big.Int, s string) *big.Int {
	if s == "" {
		return z.SetInt64(0)
	}
	if _, ok := z.SetString(s, 10); !ok {
		panic(fmt.Errorf("setDigits(%q) failed: parsing error", s))
	}
	return z
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
