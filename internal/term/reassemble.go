// Package term turns tagger output into candidate terms for dictionary lookup.
package term

import (
	"strings"

	"github.com/hukuksozluk/vurgu/internal/tagger"
)

// WordStartMarker prefixes the first piece of every word in SentencePiece output.
const WordStartMarker = "▁"

// AcceptedTags are the POS tags a word must start with to become a candidate.
var AcceptedTags = map[string]struct{}{
	tagger.TagNoun:       {},
	tagger.TagProperNoun: {},
	tagger.TagAdjective:  {},
	tagger.TagVerb:       {},
}

// IsAccepted reports whether tag is one of AcceptedTags.
func IsAccepted(tag string) bool {
	_, ok := AcceptedTags[tag]
	return ok
}

// Reassemble merges subword pieces into whole words and keeps the words whose
// first piece carries an accepted tag. The result is deduplicated and keeps
// first-seen order.
func Reassemble(tokens []tagger.Token) []string {
	words := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	var current strings.Builder
	started := false
	accepted := false
	flush := func() {
		word := current.String()
		current.Reset()
		if !started || !accepted || word == "" {
			return
		}
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	for _, token := range tokens {
		if strings.HasPrefix(token.Word, WordStartMarker) || !started {
			flush()
			started = true
			accepted = IsAccepted(token.Entity)
			current.WriteString(strings.TrimLeft(token.Word, WordStartMarker))
			continue
		}
		current.WriteString(token.Word)
	}
	flush()

	return words
}
