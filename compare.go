package numeral

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Trailing zeros do not affect the result, so 1.50 and 1.5 are equal.
func (d Numeral) Cmp(e Operand) int {
	r, err := cmpFast(d.canonical(), e.canonical())
	if err != nil {
		r = cmpSlow(d.canonical(), e.canonical())
	}
	return r
}

func cmpFast(a, b string) (int, error) {
	aneg, acoef, bneg, bcoef, _, err := normalizeFast(a, b)
	if err != nil {
		return 0, err
	}

	asign, bsign := fintSign(aneg, acoef), fintSign(bneg, bcoef)

	// Comparison
	switch {
	case asign < bsign:
		return -1, nil
	case bsign < asign:
		return 1, nil
	case bcoef < acoef:
		return asign, nil
	case acoef < bcoef:
		return -asign, nil
	default:
		return 0, nil
	}
}

func fintSign(neg bool, coef fint) int {
	switch {
	case coef == 0:
		return 0
	case neg:
		return -1
	default:
		return 1
	}
}

func cmpSlow(a, b string) int {
	x, y, _ := normalize(a, b)
	defer putBint(x)
	defer putBint(y)
	return x.cmp(y)
}

// Equal returns true if d == e.
func (d Numeral) Equal(e Operand) bool {
	return d.Cmp(e) == 0
}

// GreaterThan returns true if d > e.
func (d Numeral) GreaterThan(e Operand) bool {
	return d.Cmp(e) > 0
}

// LessThan returns true if d < e.
func (d Numeral) LessThan(e Operand) bool {
	return d.Cmp(e) < 0
}

// GreaterThanOrEqual returns true if d >= e.
func (d Numeral) GreaterThanOrEqual(e Operand) bool {
	return d.GreaterThan(e) || d.Equal(e)
}

// LessThanOrEqual returns true if d <= e.
func (d Numeral) LessThanOrEqual(e Operand) bool {
	return d.LessThan(e) || d.Equal(e)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Numeral) Sign() int {
	return d.Cmp(Int(0))
}

// IsPos returns true if d > 0.
func (d Numeral) IsPos() bool {
	return d.GreaterThan(Int(0))
}

// IsNeg returns true if d < 0.
func (d Numeral) IsNeg() bool {
	return d.LessThan(Int(0))
}

// IsZero returns true if d == 0.
func (d Numeral) IsZero() bool {
	return d.Equal(Int(0))
}

// Max returns the larger of d and e.
func (d Numeral) Max(e Numeral) Numeral {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e.
func (d Numeral) Min(e Numeral) Numeral {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
