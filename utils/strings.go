package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ucwords upper-cases the first character of every whitespace-delimited word.
// The rest of each word is left untouched: "hello WORLD" -> "Hello WORLD".
func Ucwords(s string) string {
	// Casers are stateful, one per call
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			wordStart = true
			b.WriteRune(r)
			continue
		}
		if wordStart {
			b.WriteString(upper.String(string(r)))
			wordStart = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Lower lower-cases s using Unicode default casing rules
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
