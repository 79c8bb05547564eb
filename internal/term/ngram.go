package term

import "strings"

// DefaultNGramSize is the window used when none is configured.
const DefaultNGramSize = 2

// Candidates expands words into lookup candidates for windows 2..n.
//
// Without multiWord every window yields the single word at its start, so each
// word appears n-1 times and no phrase is ever produced. With multiWord the
// single word is followed by the space-joined runs of 2..n consecutive words.
func Candidates(words []string, n int, multiWord bool) []string {
	if n < 2 {
		return nil
	}

	if !multiWord {
		candidates := make([]string, 0, len(words)*(n-1))
		for i := range words {
			for j := 2; j <= n; j++ {
				candidates = append(candidates, words[i])
			}
		}
		return candidates
	}

	candidates := make([]string, 0, len(words)*n)
	for i := range words {
		candidates = append(candidates, words[i])
		for j := 2; j <= n && i+j <= len(words); j++ {
			candidates = append(candidates, strings.Join(words[i:i+j], " "))
		}
	}
	return candidates
}
