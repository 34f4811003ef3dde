// Package normalize canonicalizes Persian and Arabic text for search matching.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	persianDigits     = "۰۱۲۳۴۵۶۷۸۹"
	arabicIndicDigits = "٠١٢٣٤٥٦٧٨٩"
	asciiDigits       = "0123456789"

	zeroWidthNonJoiner = '\u200c'
)

var (
	persianDigitTable     = []rune(persianDigits)
	arabicIndicDigitTable = []rune(arabicIndicDigits)
)

// Text maps Arabic letter forms and Persian/Arabic-Indic digits to their
// canonical forms, strips ZWNJ, collapses whitespace, lower-cases and trims.
func Text(s string) string {
	if s == "" {
		return ""
	}

	t := transform.Chain(
		runes.Map(canonicalRune),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == zeroWidthNonJoiner })),
	)
	mapped, _, err := transform.String(t, s)
	if err != nil {
		// transform.String only fails on malformed transformers; fall back to input
		mapped = s
	}

	collapsed := strings.Join(strings.Fields(mapped), " ")
	return cases.Lower(language.Und).String(collapsed)
}

// Tokens splits the normalized form of s on whitespace
func Tokens(s string) []string {
	return strings.Fields(Text(s))
}

func canonicalRune(r rune) rune {
	switch r {
	case 'ي':
		return 'ی'
	case 'ك':
		return 'ک'
	}
	if i := digitIndex(persianDigitTable, r); i >= 0 {
		return rune(asciiDigits[i])
	}
	if i := digitIndex(arabicIndicDigitTable, r); i >= 0 {
		return rune(asciiDigits[i])
	}
	return r
}

func digitIndex(table []rune, r rune) int {
	for i, d := range table {
		if d == r {
			return i
		}
	}
	return -1
}
