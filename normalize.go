package numeral

import "errors"

var errCoefficientOverflow = errors.New("coefficient overflow")

// normalize aligns a and b to the scale of the operand with more
// fractional digits and returns both as signed integers multiplied by 10^scale.
// The caller owns x and y and should return them with [putBint].
func normalize(a, b string) (x, y *bint, scale int) {
	pa, pb := split(a), split(b)
	scale = max(pa.scale, pb.scale)

	x = getBint()
	x.setDigits(pa.neg, pa.digits)
	x.lsh(x, scale-pa.scale)

	y = getBint()
	y.setDigits(pb.neg, pb.digits)
	y.lsh(y, scale-pb.scale)

	return x, y, scale
}

// normalizeFast is similar to normalize, but it uses uint64 coefficients
// and returns their signs separately.
// It returns an error if any of the aligned coefficients overflows.
func normalizeFast(a, b string) (xneg bool, x fint, yneg bool, y fint, scale int, err error) {
	pa, pb := split(a), split(b)
	scale = max(pa.scale, pb.scale)

	var ok bool
	x, ok = parseFint(pa.digits)
	if !ok {
		return false, 0, false, 0, 0, errCoefficientOverflow
	}
	x, ok = x.lsh(scale - pa.scale)
	if !ok {
		return false, 0, false, 0, 0, errCoefficientOverflow
	}

	y, ok = parseFint(pb.digits)
	if !ok {
		return false, 0, false, 0, 0, errCoefficientOverflow
	}
	y, ok = y.lsh(scale - pb.scale)
	if !ok {
		return false, 0, false, 0, 0, errCoefficientOverflow
	}

	return pa.neg && x != 0, x, pb.neg && y != 0, y, scale, nil
}
