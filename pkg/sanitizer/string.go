package sanitizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// CapitalizeWordsIn returns a transform that upper-cases the first character
// of every word using the casing rules of tag. The rest of each word is kept
// as is. Words are separated by single spaces; empty words produced by
// consecutive spaces are preserved, so the spacing of the input survives.
// A word starting with an invalid UTF-8 byte is left untouched.
//
// Full case mapping applies, so "ß" becomes "SS" and, for Turkish, "i"
// becomes "İ".
func CapitalizeWordsIn(tag language.Tag) func(string) string {
	return func(s string) string {
		if s == "" {
			return s
		}

		// cases.Caser is stateful and must not be shared between goroutines.
		upper := cases.Upper(tag)

		words := strings.Split(s, " ")
		for i, word := range words {
			if word == "" {
				continue
			}
			r, size := utf8.DecodeRuneInString(word)
			if r == utf8.RuneError && size <= 1 {
				continue
			}
			words[i] = upper.String(word[:size]) + word[size:]
		}

		return strings.Join(words, " ")
	}
}
