package numeral

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// scaled returns coef / 10^scale as a numeral with the default precision.
func scaled(coef int64, scale int) Numeral {
	neg := coef < 0
	if neg {
		coef = -coef
	}
	digits := strconv.FormatInt(coef, 10)
	if scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if neg {
		digits = "-" + digits
	}
	return MustParse(digits)
}

func TestNumeral_Properties(t *testing.T) {
	coefs := gen.Int64Range(-1_000_000_000_000, 1_000_000_000_000)
	// Scales stay below DefaultPrec: a difference finer than the precision
	// of the receiver rounds to zero, so GreaterThan and Sub().IsPos() only
	// agree while operands fit the precision.
	scales := gen.IntRange(0, 8)

	properties := gopter.NewProperties(nil)

	properties.Property("subtraction undoes addition", prop.ForAll(
		func(ac int64, as int, bc int64, bs int) bool {
			a, b := scaled(ac, as), scaled(bc, bs)
			return a.Add(b).Sub(b).Equal(a)
		},
		coefs, scales, coefs, scales,
	))

	properties.Property("addition is commutative", prop.ForAll(
		func(ac int64, as int, bc int64, bs int) bool {
			a, b := scaled(ac, as), scaled(bc, bs)
			return a.Add(b).String() == b.Add(a).String()
		},
		coefs, scales, coefs, scales,
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(ac int64, as int, bc int64, bs int) bool {
			a, b := scaled(ac, as), scaled(bc, bs)
			return a.Mul(b).String() == b.Mul(a).String()
		},
		coefs, scales, coefs, scales,
	))

	properties.Property("division is close to inverse of multiplication", prop.ForAll(
		func(ac int64, as int, bc int64, bs int) bool {
			a, b := scaled(ac, as), scaled(bc, bs)
			if b.IsZero() {
				return true
			}
			q, err := a.Quo(b)
			if err != nil {
				return false
			}
			tol := b.Abs().Add(Int(1)).Mul(MustParse("0.0000000001"))
			return q.Mul(b).Sub(a).Abs().LessThanOrEqual(tol)
		},
		coefs, scales, coefs, scales,
	))

	properties.Property("division by zero fails", prop.ForAll(
		func(ac int64, as int) bool {
			_, err := scaled(ac, as).Quo(Int(0))
			return errors.Is(err, ErrDivisionByZero)
		},
		coefs, scales,
	))

	properties.Property("exactly one sign predicate holds", prop.ForAll(
		func(ac int64, as int) bool {
			a := scaled(ac, as)
			n := 0
			for _, ok := range []bool{a.IsPos(), a.IsNeg(), a.IsZero()} {
				if ok {
					n++
				}
			}
			return n == 1
		},
		coefs, scales,
	))

	properties.Property("greater than agrees with sign of difference", prop.ForAll(
		func(ac int64, as int, bc int64, bs int) bool {
			a, b := scaled(ac, as), scaled(bc, bs)
			return a.GreaterThan(b) == a.Sub(b).IsPos()
		},
		coefs, scales, coefs, scales,
	))

	properties.Property("string round trip", prop.ForAll(
		func(ac int64, as int) bool {
			a := scaled(ac, as)
			b, err := Parse(a.String())
			return err == nil && b.String() == a.String()
		},
		coefs, scales,
	))

	properties.Property("grouping only inserts separators", prop.ForAll(
		func(ac int64, as int) bool {
			a := scaled(ac, as)
			for _, style := range []Style{International, Indic} {
				if strings.ReplaceAll(a.Localize(style, Latin), ",", "") != a.String() {
					return false
				}
			}
			return true
		},
		coefs, scales,
	))

	properties.TestingRun(t)
}
