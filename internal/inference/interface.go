package inference

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_explainer.go -package=mock_inference

// Explainer turns a legal text into a plain-language explanation.
type Explainer interface {
	Explain(ctx context.Context, params ExplainRequest) (string, error)
}

// TermDefinition is a discovered term and its dictionary definition.
type TermDefinition struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// ExplainRequest holds the original text and the definitions found in it, in display order.
type ExplainRequest struct {
	Text        string
	Definitions []TermDefinition
}

const (
	DefaultMaxRetryAttempts = 3
	DefaultMaxTokens        = 200

	// SystemPrompt asks for the explanation in the language of the dictionary.
	SystemPrompt = "Generate an explanation of this legal text in Turkish. Use term definitions instead of terms"
)

// UserPrompt serializes the request as "Original Input: ...\nTerm Definitions: t1: d1\nt2: d2".
func (r ExplainRequest) UserPrompt() string {
	pairs := make([]string, len(r.Definitions))
	for i, d := range r.Definitions {
		pairs[i] = fmt.Sprintf("%s: %s", d.Term, d.Definition)
	}
	return fmt.Sprintf("Original Input: %s\nTerm Definitions: %s", r.Text, strings.Join(pairs, "\n"))
}
