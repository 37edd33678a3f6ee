// Package textnorm folds user text so that "Classificação", "classificacao" and
// "CLASSIFICAÇÃO" compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s, strips diacritics and collapses whitespace. Punctuation is kept.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Words folds s and replaces anything that is not a letter or digit with a space,
// so word-boundary patterns behave the same for "benfica?" and "benfica".
func Words(s string) string {
	folded := Fold(s)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Join(strings.Fields(mapped), " ")
}

// ContainsWord reports whether phrase occurs in text on word boundaries. Both
// arguments must already be in Words form.
func ContainsWord(text, phrase string) bool {
	return IndexWord(text, phrase) >= 0
}

// IndexWord is the byte offset of the first word-bounded occurrence of phrase, or -1.
func IndexWord(text, phrase string) int {
	if phrase == "" {
		return -1
	}
	padded := " " + text + " "
	idx := strings.Index(padded, " "+phrase+" ")
	if idx < 0 {
		return -1
	}
	return idx
}
