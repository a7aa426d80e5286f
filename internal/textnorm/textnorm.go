// Package textnorm normalizes free-text Spanish values from the source
// spreadsheet so the same name or committee spelled with different casing,
// spacing or diacritics compares equal downstream.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritics: "Querétaro" → "Queretaro".
func Fold(s string) string {
	// Transformers carry state, so build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Clean lowercases, trims, collapses runs of whitespace, drops punctuation
// (keeping letters, digits and spaces) and folds diacritics.
func Clean(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
				lastSpace = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return Fold(strings.TrimRight(b.String(), " "))
}
