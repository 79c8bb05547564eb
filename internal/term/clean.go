package term

import "strings"

// Punctuation is stripped from both ends of a word before lookup or matching.
const Punctuation = ".,!?()[]{}\":;"

// Clean trims Punctuation from both ends of word.
func Clean(word string) string {
	return strings.Trim(word, Punctuation)
}
