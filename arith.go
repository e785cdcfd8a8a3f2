package numeral

import (
	"fmt"
	"strings"
)

// newFromRatio returns a numeral equal to num / den rounded to prec digits
// after the decimal point using "half away from zero" rule.
// The denominator must not be zero.
func newFromRatio(num, den *bint, prec int) (Numeral, error) {
	q := getBint()
	defer putBint(q)
	q.lsh(num, prec)
	q.quoHalfUp(q, den)
	return ParsePrec(fixed(q, prec), prec)
}

// fixed renders z / 10^prec with exactly prec digits after the decimal point.
func fixed(z *bint, prec int) string {
	digits := z.digits()
	neg := digits[0] == '-'
	if neg {
		digits = digits[1:]
	}
	if pad := prec + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	var b strings.Builder
	b.Grow(len(digits) + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(digits[:len(digits)-prec])
	if prec > 0 {
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-prec:])
	}
	return b.String()
}

// Add returns the sum of d and e rounded to [Numeral.Prec] digits after the
// decimal point.
// The precision of the result is the same as the precision of d.
func (d Numeral) Add(e Operand) Numeral {
	f, err := d.AddPrec(e, d.Prec())
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", d, e.canonical(), err)) // unexpected by design
	}
	return f
}

// AddPrec is similar to [Numeral.Add], but the result is rounded to prec
// digits after the decimal point and has precision prec.
//
// AddPrec returns an error if prec is negative or greater than [MaxPrec].
func (d Numeral) AddPrec(e Operand, prec int) (Numeral, error) {
	if err := checkPrec(prec); err != nil {
		return Numeral{}, fmt.Errorf("computing [%v + %v]: %w", d, e.canonical(), err)
	}
	x, y, scale := normalize(d.canonical(), e.canonical())
	defer putBint(x)
	defer putBint(y)
	x.add(x, y)
	return newFromScaled(x, scale, prec)
}

// Sub returns the difference of d and e rounded to [Numeral.Prec] digits
// after the decimal point.
// The precision of the result is the same as the precision of d.
func (d Numeral) Sub(e Operand) Numeral {
	f, err := d.SubPrec(e, d.Prec())
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", d, e.canonical(), err)) // unexpected by design
	}
	return f
}

// SubPrec is similar to [Numeral.Sub], but the result is rounded to prec
// digits after the decimal point and has precision prec.
//
// SubPrec returns an error if prec is negative or greater than [MaxPrec].
func (d Numeral) SubPrec(e Operand, prec int) (Numeral, error) {
	if err := checkPrec(prec); err != nil {
		return Numeral{}, fmt.Errorf("computing [%v - %v]: %w", d, e.canonical(), err)
	}
	x, y, scale := normalize(d.canonical(), e.canonical())
	defer putBint(x)
	defer putBint(y)
	x.sub(x, y)
	return newFromScaled(x, scale, prec)
}

// newFromScaled returns a numeral equal to z / 10^scale rounded to prec digits.
func newFromScaled(z *bint, scale, prec int) (Numeral, error) {
	den := getBint()
	defer putBint(den)
	den.pow10(scale)
	return newFromRatio(z, den, prec)
}

// Mul returns the product of d and e rounded to [Numeral.Prec] digits after
// the decimal point.
// The precision of the result is the same as the precision of d.
func (d Numeral) Mul(e Operand) Numeral {
	f, err := d.MulPrec(e, d.Prec())
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", d, e.canonical(), err)) // unexpected by design
	}
	return f
}

// MulPrec is similar to [Numeral.Mul], but the result is rounded to prec
// digits after the decimal point and has precision prec.
//
// MulPrec returns an error if prec is negative or greater than [MaxPrec].
func (d Numeral) MulPrec(e Operand, prec int) (Numeral, error) {
	if err := checkPrec(prec); err != nil {
		return Numeral{}, fmt.Errorf("computing [%v * %v]: %w", d, e.canonical(), err)
	}

	pd, pe := split(d.canonical()), split(e.canonical())

	x := getBint()
	defer putBint(x)
	x.setDigits(pd.neg, pd.digits)

	y := getBint()
	defer putBint(y)
	y.setDigits(pe.neg, pe.digits)

	x.mul(x, y)
	return newFromScaled(x, pd.scale+pe.scale, prec)
}

// Quo returns the quotient of d and e rounded to [Numeral.Prec] digits after
// the decimal point.
// The precision of the result is the same as the precision of d.
//
// Quo returns an error wrapping [ErrDivisionByZero] if e is zero.
func (d Numeral) Quo(e Operand) (Numeral, error) {
	return d.QuoPrec(e, d.Prec())
}

// QuoPrec is similar to [Numeral.Quo], but the result is rounded to prec
// digits after the decimal point and has precision prec.
//
// QuoPrec returns an error if:
//   - prec is negative or greater than [MaxPrec];
//   - e is zero.
func (d Numeral) QuoPrec(e Operand, prec int) (Numeral, error) {
	if err := checkPrec(prec); err != nil {
		return Numeral{}, fmt.Errorf("computing [%v / %v]: %w", d, e.canonical(), err)
	}

	pd, pe := split(d.canonical()), split(e.canonical())

	// Coefficients without decimal points
	x := getBint()
	defer putBint(x)
	x.setDigits(pd.neg, pd.digits)

	y := getBint()
	defer putBint(y)
	y.setDigits(pe.neg, pe.digits)

	if y.sign() == 0 {
		return Numeral{}, fmt.Errorf("computing [%v / %v]: %w", d, e.canonical(), ErrDivisionByZero)
	}

	// Quotient of coefficients times 10^(escale - dscale).
	// A negative power moves to the denominator, so no digit is lost.
	x.lsh(x, pe.scale)
	y.lsh(y, pd.scale)

	return newFromRatio(x, y, prec)
}

// Round returns d rounded to the specified number of digits after the decimal
// point using "half away from zero" rule.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
// The precision of the result is the same as the precision of d.
//
// Round returns an error if scale is negative or greater than [MaxPrec].
func (d Numeral) Round(scale int) (Numeral, error) {
	if err := checkPrec(scale); err != nil {
		return Numeral{}, fmt.Errorf("rounding %v: %w", d, err)
	}
	p := split(d.canonical())

	x := getBint()
	defer putBint(x)
	x.setDigits(p.neg, p.digits)

	f, err := newFromScaled(x, p.scale, scale)
	if err != nil {
		return Numeral{}, fmt.Errorf("rounding %v: %w", d, err)
	}
	return Numeral{text: f.text, prec: d.prec}, nil
}
