// Package format holds the small text helpers the views and API share.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Number renders n with thousands separators, e.g. 1234567 -> "1,234,567".
func Number(n int64) string {
	return humanize.Comma(n)
}

// Truncate shortens text to at most maxLen runes, ending with suffix when
// anything was cut.
func Truncate(text string, maxLen int, suffix string) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	keep := maxLen - utf8.RuneCountInString(suffix)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(text)
	return string(runes[:keep]) + suffix
}

// Capitalize upper-cases the first rune of text.
func Capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// KebabToTitle turns "deep-focus" into "Deep Focus". Consecutive dashes
// produce consecutive spaces.
func KebabToTitle(text string) string {
	words := strings.Split(text, "-")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
