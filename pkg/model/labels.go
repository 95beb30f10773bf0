package model

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var labelSeparators = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler turns a field name into a label: separators and camelCase
// or letter/digit boundaries become spaces and each word is capitalised.
func DefaultLabeler(name string) string {
	var words []string
	for _, chunk := range labelSeparators.Split(name, -1) {
		words = append(words, splitBoundaries(chunk)...)
	}
	for i, word := range words {
		words[i] = capitalise(word)
	}
	return strings.Join(words, " ")
}

func splitBoundaries(chunk string) []string {
	var (
		words []string
		start int
		prev  rune
	)
	for i, r := range chunk {
		if i > 0 && isWordBoundary(prev, r) {
			words = append(words, chunk[start:i])
			start = i
		}
		prev = r
	}
	if start < len(chunk) {
		words = append(words, chunk[start:])
	}
	return words
}

func isWordBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

func capitalise(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
