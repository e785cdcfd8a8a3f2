package numeral

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ErrUnknownStyle is returned by [ParseStyle] for an unrecognized style.
var ErrUnknownStyle = errors.New("unknown numbering style")

// Style is a numbering convention used for digit grouping and scale names.
type Style int

const (
	// International groups digits by thousands (1,234,567) and uses
	// Thousand, Million, Billion, and so on.
	International Style = iota
	// Indic keeps the last three digits together and groups the rest by
	// twos (12,34,567); it uses Thousand, Lakh, Crore, Arab, and so on.
	Indic
)

// String returns "EN" for [International] and "NP" for [Indic].
func (s Style) String() string {
	switch s {
	case International:
		return "EN"
	case Indic:
		return "NP"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// indicRegions are regions where lakh and crore grouping is customary.
var indicRegions = []language.Region{
	language.MustParseRegion("IN"),
	language.MustParseRegion("NP"),
	language.MustParseRegion("BD"),
	language.MustParseRegion("PK"),
	language.MustParseRegion("LK"),
	language.MustParseRegion("BT"),
}

// StyleForTag returns the numbering style customary for a language tag.
// The region of the tag decides; when the tag has no region, the most
// likely one is used, so "hi" and "ne" map to [Indic] while "en" maps
// to [International].
func StyleForTag(tag language.Tag) Style {
	region, _ := tag.Region()
	for _, r := range indicRegions {
		if region == r {
			return Indic
		}
	}
	return International
}

// ParseStyle converts a string to a numbering style.
// It accepts "EN" and "NP" in any letter case, as well as any
// [BCP 47] language tag, such as "en-US" or "hi-IN", see [StyleForTag].
//
// [BCP 47]: https://www.rfc-editor.org/info/bcp47
func ParseStyle(s string) (Style, error) {
	switch strings.ToUpper(s) {
	case "EN":
		return International, nil
	case "NP":
		return Indic, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return International, fmt.Errorf("%q: %w", s, ErrUnknownStyle)
	}
	return StyleForTag(tag), nil
}

// Script is a set of glyphs used for digits.
type Script int

const (
	Latin      Script = iota // 0123456789
	Devanagari               // ०१२३४५६७८९
)

func (s Script) String() string {
	switch s {
	case Latin:
		return "Latin"
	case Devanagari:
		return "Devanagari"
	default:
		return fmt.Sprintf("Script(%d)", int(s))
	}
}

// devanagari maps ASCII digits to Devanagari digits and keeps other runes.
var devanagari = runes.Map(func(r rune) rune {
	if '0' <= r && r <= '9' {
		return '०' + (r - '0')
	}
	return r
})

// transliterate replaces ASCII digits in str with digits of the script.
func (s Script) transliterate(str string) string {
	if s != Devanagari {
		return str
	}
	res, _, err := transform.String(devanagari, str)
	if err != nil {
		return str
	}
	return res
}

// Localize returns the canonical string of d with the integer part grouped
// according to the style and digits written in the script.
// The fractional part is never grouped.
//
//	| Numeral      | International, Latin | Indic, Latin   | Indic, Devanagari |
//	| ------------ | -------------------- | -------------- | ----------------- |
//	| 1234567      | 1,234,567            | 12,34,567      | १२,३४,५६७         |
//	| -1234567.891 | -1,234,567.891       | -12,34,567.891 | -१२,३४,५६७.८९१    |
func (d Numeral) Localize(style Style, script Script) string {
	text := d.canonical()

	sign := ""
	if text[0] == '-' {
		sign = "-"
		text = text[1:]
	}
	whole, frac, hasFrac := strings.Cut(text, ".")

	switch style {
	case International:
		whole = groupDigits(whole, 3, 3)
	case Indic:
		whole = groupDigits(whole, 3, 2)
	}

	var b strings.Builder
	b.Grow(len(sign) + 2*len(whole) + len(frac) + 1)
	b.WriteString(sign)
	b.WriteString(whole)
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return script.transliterate(b.String())
}

// groupDigits inserts commas into a string of digits so that the rightmost
// group has last digits and every other group has size digits.
func groupDigits(digits string, last, size int) string {
	if len(digits) <= last {
		return digits
	}
	head := digits[:len(digits)-last]
	groups := make([]string, 0, len(head)/size+2)
	if r := len(head) % size; r > 0 {
		groups = append(groups, head[:r])
		head = head[r:]
	}
	for len(head) > 0 {
		groups = append(groups, head[:size])
		head = head[size:]
	}
	groups = append(groups, digits[len(digits)-last:])
	return strings.Join(groups, ",")
}
