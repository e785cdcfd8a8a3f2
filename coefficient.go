package numeral

import (
	"math/big"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = 9_999_999_999_999_999_999

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxFint/10: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		if x == 0 {
			return 0, true
		}
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// parseFint converts a string of decimal digits to fint and checks overflow.
func parseFint(digits string) (z fint, ok bool) {
	for i := 0; i < len(digits); i++ {
		z, ok = z.fsa(1, digits[i]-'0')
		if !ok {
			return 0, false
		}
	}
	return z, true
}

// bint (Big INTeger) is a wrapper around big.Int.
// Unlike the coefficient of a decimal, bint is signed.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = newBpow10Cache(MaxPrec + 1)

func newBpow10Cache(n int) []*bint {
	cache := make([]*bint, n)
	ten := big.NewInt(10)
	for i := range cache {
		z := new(big.Int)
		z.Exp(ten, big.NewInt(int64(i)), nil)
		cache[i] = (*bint)(z)
	}
	return cache
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

// cmpAbs compares |z| and |x|.
func (z *bint) cmpAbs(x *bint) int {
	return (*big.Int)(z).CmpAbs((*big.Int)(x))
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// setDigits sets z to the signed integer written by digits.
// Digits must be a non-empty string of decimal digits.
func (z *bint) setDigits(neg bool, digits string) {
	if f, ok := parseFint(digits); ok {
		(*big.Int)(z).SetUint64(uint64(f))
	} else {
		(*big.Int)(z).SetString(digits, 10)
	}
	if neg {
		z.neg(z)
	}
}

// digits returns decimal representation of z, with a leading '-' if z is negative.
func (z *bint) digits() string {
	return (*big.Int)(z).Text(10)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// quoRem calculates z and r such that x = z * y + r, truncating towards zero.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// quoHalfUp calculates z = x / y and rounds result using "half away from
// zero" rule.
// If y is zero or z and y are the same variable, the result is unpredictable.
func (z *bint) quoHalfUp(x, y *bint) {
	r := getBint()
	defer putBint(r)
	sgn := x.sign() * y.sign()
	z.quoRem(x, y, r)
	r.abs(r)
	r.dbl(r) // r = |r| * 2
	if r.cmpAbs(y) >= 0 {
		one := getBint()
		defer putBint(one)
		one.setInt64(int64(sgn))
		z.add(z, one)
	}
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
