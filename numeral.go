package numeral

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeral type is an immutable fixed-point decimal number together with
// the precision of the results it produces.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A numeral is a struct with two parameters:
//
//   - Text: the canonical string form of the number, such as "-1234.50".
//   - Precision: the number of digits after the decimal point in the results
//     of arithmetic operations that use this numeral as a receiver.
//
// The canonical form keeps trailing zeros in the fractional part, so
// 1, 1.0, and 1.00 have the same value but different strings.
// The zero value is the number 0 with precision 0.
type Numeral struct {
	text string // canonical decimal string, empty for the zero value
	prec int    // number of digits after the decimal point in results
}

const (
	DefaultPrec = 10  // precision of numerals created without an explicit one
	MaxPrec     = 100 // maximum number of digits after the decimal point in results
)

var (
	// ErrInvalidNumeral is returned when a string is not a valid decimal numeral.
	ErrInvalidNumeral = errors.New("invalid numeral")
	// ErrDivisionByZero is returned by [Numeral.Quo] when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPrecisionRange is returned when a precision is negative or greater than [MaxPrec].
	ErrPrecisionRange = errors.New("precision out of range")
)

// Operand is a value that can be used as an argument of arithmetic and
// comparison operations.
// It is implemented by [Numeral] and [Int].
// Strings and floating-point numbers must be converted with [Parse] or
// [NewFromFloat64] first, so that every operand is a valid numeral.
type Operand interface {
	canonical() string
}

// Int is an integer operand.
type Int int64

func (i Int) canonical() string {
	return strconv.FormatInt(int64(i), 10)
}

func (d Numeral) canonical() string {
	if d.text == "" {
		return "0"
	}
	return d.text
}

func checkPrec(prec int) error {
	if prec < 0 || MaxPrec < prec {
		return fmt.Errorf("precision %v: %w", prec, ErrPrecisionRange)
	}
	return nil
}

// New returns a numeral with the same value as o and the given precision.
//
// New returns an error if the precision is negative or greater than [MaxPrec].
func New(o Operand, prec int) (Numeral, error) {
	if err := checkPrec(prec); err != nil {
		return Numeral{}, err
	}
	return Numeral{text: o.canonical(), prec: prec}, nil
}

// NewFromInt64 returns a numeral equal to v with the [DefaultPrec] precision.
func NewFromInt64(v int64) Numeral {
	return Numeral{text: Int(v).canonical(), prec: DefaultPrec}
}

// NewFromFloat64 converts a float to a numeral with the [DefaultPrec] precision.
// The shortest decimal representation that rounds back to f is used, so
// NewFromFloat64(0.1) is exactly 0.1.
//
// NewFromFloat64 returns an error if f is NaN or an infinity.
func NewFromFloat64(f float64) (Numeral, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Numeral{}, fmt.Errorf("converting %v: %w", f, ErrInvalidNumeral)
	}
	return ParsePrec(strconv.FormatFloat(f, 'f', -1, 64), DefaultPrec)
}

// Parse converts a string to a numeral with the [DefaultPrec] precision.
// The input string must be in one of the following formats:
//
//	1234
//	-1234.5678
//	+0.001
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// Parse removes leading zeros from the integer part and the sign of zero,
// but keeps trailing zeros in the fractional part.
//
// Parse returns an error wrapping [ErrInvalidNumeral] if the string does
// not match the grammar.
func Parse(s string) (Numeral, error) {
	return ParsePrec(s, DefaultPrec)
}

// ParsePrec is similar to [Parse], but it allows you to specify the precision
// of the numeral.
func ParsePrec(s string, prec int) (Numeral, error) {
	if err := checkPrec(prec); err != nil {
		return Numeral{}, err
	}
	text, err := canonicalize(s)
	if err != nil {
		return Numeral{}, err
	}
	return Numeral{text: text, prec: prec}, nil
}

// canonicalize validates s and returns its canonical form.
func canonicalize(s string) (string, error) {
	var (
		pos    int
		width  int
		neg    bool
		intbeg int
		intend int
		frac   int
		nonzer bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		return "", fmt.Errorf("empty string: %w", ErrInvalidNumeral)
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	intbeg = pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		if s[pos] != '0' {
			nonzer = true
		}
		pos++
	}
	intend = pos
	if intbeg == intend {
		return "", fmt.Errorf("%q: no integer digits: %w", s, ErrInvalidNumeral)
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			if s[pos] != '0' {
				nonzer = true
			}
			frac++
			pos++
		}
		if frac == 0 {
			return "", fmt.Errorf("%q: no fractional digits: %w", s, ErrInvalidNumeral)
		}
	}

	if pos != width {
		return "", fmt.Errorf("%q: invalid character %q: %w", s, s[pos], ErrInvalidNumeral)
	}

	// Leading zeros
	for intbeg < intend-1 && s[intbeg] == '0' {
		intbeg++
	}

	var b strings.Builder
	b.Grow(width)
	if neg && nonzer {
		b.WriteByte('-')
	}
	b.WriteString(s[intbeg:])
	return b.String(), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numerals.
func MustParse(s string) Numeral {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical string form of a numeral.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Numeral) String() string {
	return d.canonical()
}

// Prec returns the number of digits after the decimal point in the results
// of arithmetic operations.
func (d Numeral) Prec() int {
	return d.prec
}

// Scale returns the number of digits after the decimal point in the
// canonical string.
func (d Numeral) Scale() int {
	return split(d.canonical()).scale
}

// WithPrec returns a numeral with the same value as d and the given precision.
func (d Numeral) WithPrec(prec int) (Numeral, error) {
	return New(d, prec)
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
// If the numeral is too large to be represented as a float, the result is
// an infinity and ok is false.
func (d Numeral) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.canonical(), 64)
	if err != nil {
		return f, false
	}
	return f, true
}

// Neg returns d with opposite sign.
func (d Numeral) Neg() Numeral {
	text := d.canonical()
	switch {
	case text[0] == '-':
		text = text[1:]
	case !isZeroText(text):
		text = "-" + text
	}
	return Numeral{text: text, prec: d.prec}
}

// Abs returns absolute value of d.
func (d Numeral) Abs() Numeral {
	text := d.canonical()
	if text[0] == '-' {
		text = text[1:]
	}
	return Numeral{text: text, prec: d.prec}
}

func isZeroText(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= '1' && text[i] <= '9' {
			return false
		}
	}
	return true
}

// parts is a canonical numeral broken into its components.
type parts struct {
	neg    bool
	digits string // integer and fractional digits without the decimal point
	scale  int    // number of fractional digits
}

// split breaks a canonical numeral into its components.
func split(text string) parts {
	var p parts
	if text != "" && text[0] == '-' {
		p.neg = true
		text = text[1:]
	}
	whole, frac, ok := strings.Cut(text, ".")
	if !ok {
		p.digits = whole
		return p
	}
	p.digits = whole + frac
	p.scale = len(frac)
	return p
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The precision of the result is [DefaultPrec].
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Numeral) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Numeral.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Numeral) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// See also constructor [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Numeral) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d = NewFromInt64(value)
	case float64:
		*d, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("type %T: %w", value, ErrInvalidNumeral)
	}
	if err != nil {
		return fmt.Errorf("scanning %v: %w", value, err)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Numeral.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Numeral) Value() (driver.Value, error) {
	return d.String(), nil
}
