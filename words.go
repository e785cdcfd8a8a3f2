package numeral

import (
	"math/big"
	"strings"
)

var small = [20]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]string{
	"", "", "Twenty", "Thirty", "Forty",
	"Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

type magnitude struct {
	value *big.Int
	word  string
}

func newMagnitude(power int, word string) magnitude {
	return magnitude{value: (*big.Int)(bpow10[power]), word: word}
}

// international lists named powers of ten from largest to smallest.
// Hundred is handled separately and is not listed here.
var international = []magnitude{
	newMagnitude(18, "Quintillion"),
	newMagnitude(15, "Quadrillion"),
	newMagnitude(12, "Trillion"),
	newMagnitude(9, "Billion"),
	newMagnitude(6, "Million"),
	newMagnitude(3, "Thousand"),
}

// indic lists named powers of ten of the South Asian system from largest
// to smallest.
var indic = []magnitude{
	newMagnitude(19, "Maha Sankha"),
	newMagnitude(17, "Sankha"),
	newMagnitude(15, "Padma"),
	newMagnitude(13, "Nil"),
	newMagnitude(11, "Kharab"),
	newMagnitude(9, "Arab"),
	newMagnitude(7, "Crore"),
	newMagnitude(5, "Lakh"),
	newMagnitude(3, "Thousand"),
}

func magnitudes(style Style) []magnitude {
	if style == Indic {
		return indic
	}
	return international
}

// Words returns d spelled out in English words, using scale names of the style.
// Digits after the decimal point are read one by one after the word "Point",
// and a fractional part consisting of zeros only is omitted:
//
//	| Numeral  | International                 | Indic              |
//	| -------- | ----------------------------- | ------------------ |
//	| 0        | Zero                          | Zero               |
//	| 123      | One Hundred Twenty Three      | (same)             |
//	| 100000   | One Hundred Thousand          | One Lakh           |
//	| 10000000 | Ten Million                   | One Crore          |
//	| -3.50    | Minus Three Point Five Zero   | (same)             |
//	| 2.00     | Two                           | Two                |
func (d Numeral) Words(style Style) string {
	text := d.canonical()
	neg := text[0] == '-'
	if neg {
		text = text[1:]
	}
	whole, frac, hasFrac := strings.Cut(text, ".")

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "" // unexpected by design
	}
	if n.Sign() == 0 && !hasFrac {
		return small[0]
	}

	words := make([]string, 0, 16)
	if neg {
		words = append(words, "Minus")
	}
	words = appendWords(words, n, magnitudes(style))

	if hasFrac && !isZeroText(frac) {
		words = append(words, "Point")
		for i := 0; i < len(frac); i++ {
			words = append(words, small[frac[i]-'0'])
		}
	}

	return strings.TrimSpace(strings.Join(words, " "))
}

var bigThousand = big.NewInt(1000)

// appendWords appends words for a non-negative integer n.
func appendWords(dst []string, n *big.Int, mags []magnitude) []string {
	if n.Cmp(bigThousand) < 0 {
		return appendSmallWords(dst, n.Int64())
	}
	for _, m := range mags {
		if n.Cmp(m.value) < 0 {
			continue
		}
		q, r := new(big.Int).QuoRem(n, m.value, new(big.Int))
		dst = appendWords(dst, q, mags)
		dst = append(dst, m.word)
		if r.Sign() != 0 {
			dst = appendWords(dst, r, mags)
		}
		return dst
	}
	return dst // unexpected by design
}

// appendSmallWords appends words for 0 <= n < 1000.
func appendSmallWords(dst []string, n int64) []string {
	switch {
	case n < 20:
		return append(dst, small[n])
	case n < 100:
		dst = append(dst, tens[n/10])
		if n%10 != 0 {
			dst = append(dst, small[n%10])
		}
		return dst
	default:
		dst = append(dst, small[n/100], "Hundred")
		if n%100 != 0 {
			dst = appendSmallWords(dst, n%100)
		}
		return dst
	}
}
