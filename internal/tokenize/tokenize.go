// Package tokenize splits raw text into displayable words.
package tokenize

import "unicode"

// Tokenize returns every maximal run of letters and digits in text, in order.
// Everything else separates words and is dropped.
func Tokenize(text string) []string {
	var words []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	if start != -1 {
		words = append(words, text[start:])
	}
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
