// Package tagger defines the part-of-speech tagging boundary of the pipeline.
package tagger

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/tagger/mock_tagger.go -package=mock_tagger

// Tagger splits text into subword pieces and tags each piece with a
// universal part-of-speech label (https://universaldependencies.org/u/pos/).
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}

// Token is a single subword piece emitted by a token-classification model.
type Token struct {
	Word   string  `json:"word"`
	Entity string  `json:"entity"`
	Score  float64 `json:"score"`
	Index  int     `json:"index"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

const (
	TagNoun        = "NOUN"
	TagProperNoun  = "PROPN"
	TagAdjective   = "ADJ"
	TagVerb        = "VERB"
	TagPunctuation = "PUNCT"
	TagDeterminer  = "DET"
	TagAuxiliary   = "AUX"
)
