/*
Package numeral implements immutable fixed-point decimal numbers for money-like
values, together with their presentation in the international and the South
Asian (Indic) numbering conventions.

# Representation

[Numeral] is a struct with two fields:

  - Text: the canonical decimal string of the number, for example "-1234.50".
    It has an optional minus sign, one or more integer digits without
    leading zeros, and optionally a decimal point followed by one or more
    fractional digits. Trailing zeros of the fractional part are kept.
  - Precision: a non-negative integer, by default [DefaultPrec], that sets
    the number of digits after the decimal point in the results of
    arithmetic operations performed with this numeral as a receiver.

Negative zeros are not supported: "-0.00" is stored as "0.00".

# Conversions

The package provides methods for converting numerals:

  - from/to string:
    [Parse], [ParsePrec], [Numeral.String], [Numeral.Localize], [Numeral.Words].
  - from/to float64:
    [NewFromFloat64], [Numeral.Float64].
  - from int64:
    [NewFromInt64], [Int].

Arguments of arithmetic and comparison methods implement [Operand].
Both [Numeral] and [Int] do, so the following calls are equivalent:

	d.Add(numeral.Int(5))
	d.Add(numeral.MustParse("5"))

# Operations

Each operation is carried out on exact integers:

  - [Numeral.Add], [Numeral.Sub], [Numeral.Cmp] and the comparison methods
    align both operands to the larger number of fractional digits, so that
    0.1 and 0.25 become 10 and 25 at scale 2, and then add, subtract, or
    compare the aligned integers.
  - [Numeral.Mul] multiplies the coefficients of the operands, which are
    their digits with the decimal point removed, and divides the product by
    10 raised to the sum of their fractional digits.
  - [Numeral.Quo] divides the coefficients and multiplies the quotient by
    10 raised to the difference of the fractional digits of the divisor and
    the dividend. The power can be negative.

Comparisons first try uint64 coefficients and fall back to [big.Int] when the
aligned coefficients do not fit into 19 digits.
Arithmetic always uses [big.Int], so no binary floating-point rounding can
occur for any magnitude.

# Rounding

The exact result of an arithmetic operation is rounded to the precision of the
receiver using "half away from zero" rule, padding with trailing zeros
when needed:

	numeral.MustParse("100.5").Add(numeral.MustParse("0.25")) // 100.7500000000

Methods with the Prec suffix, such as [Numeral.AddPrec], override the precision
for one call, and the result carries that precision.

# Errors

All methods except Must* are panic-free and pure.
Errors are returned in the following cases:

  - Invalid Numeral.
    [Parse], [ParsePrec], [NewFromFloat64], [Numeral.UnmarshalText] and
    [Numeral.Scan] return [ErrInvalidNumeral] for input outside the grammar.

  - Division by Zero.
    [Numeral.Quo] and [Numeral.QuoPrec] return [ErrDivisionByZero].

  - Precision out of range.
    Methods that accept a precision return [ErrPrecisionRange] if it is
    negative or greater than [MaxPrec].

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package numeral
