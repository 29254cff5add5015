package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// đ and Đ carry a stroke, not a combining mark, so NFD leaves them intact.
var strokeReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// Fold strips diacritics and lower-cases s, so "Phóng Sự" becomes "phong su".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strokeReplacer.Replace(folded))
}

// Tokens splits folded text into words of letters and digits.
func Tokens(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// IndexText is the value stored in an entity's search_text column.
func IndexText(fields ...string) string {
	var all []string
	for _, f := range fields {
		all = append(all, Tokens(f)...)
	}
	return strings.Join(all, " ")
}

// Query returns the distinct tokens of a search term, in order.
func Query(term string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range Tokens(term) {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
