package numeral

import "fmt"

// MustNew is like [New] but panics if the numeral cannot be constructed.
func MustNew(o Operand, prec int) Numeral {
	d, err := New(o, prec)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", o.canonical(), prec, err))
	}
	return d
}

// MustParsePrec is like [ParsePrec] but panics if the string cannot be parsed.
func MustParsePrec(s string, prec int) Numeral {
	d, err := ParsePrec(s, prec)
	if err != nil {
		panic(fmt.Sprintf("ParsePrec(%q, %v) failed: %v", s, prec, err))
	}
	return d
}

// MustQuo is like [Numeral.Quo] but panics if computing error.
func (d Numeral) MustQuo(e Operand) Numeral {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e.canonical(), err))
	}
	return f
}

// MustRound is like [Numeral.Round] but panics if computing error.
func (d Numeral) MustRound(scale int) Numeral {
	f, err := d.Round(scale)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v) failed: %v", scale, err))
	}
	return f
}
