// Package pipeline runs tagging, lookup, coloring and rendering over one input.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hukuksozluk/vurgu/internal/definition"
	"github.com/hukuksozluk/vurgu/internal/highlight"
	"github.com/hukuksozluk/vurgu/internal/inference"
	"github.com/hukuksozluk/vurgu/internal/session"
	"github.com/hukuksozluk/vurgu/internal/tagger"
	"github.com/hukuksozluk/vurgu/internal/term"
)

// ErrNoDefinitions is returned when an explanation is requested before any
// term has been defined.
var ErrNoDefinitions = errors.New("no term definitions in session")

// ErrNoExplainer is returned by Explain when the highlighter has no explainer.
var ErrNoExplainer = errors.New("no explainer configured")

// DefaultThrottle is the pause between two consecutive lookups.
const DefaultThrottle = 500 * time.Millisecond

type Options struct {
	NGramSize int
	MultiWord bool
	Throttle  time.Duration
	// ThrottleCacheHits keeps the pause after lookups answered by the store.
	ThrottleCacheHits bool
}

func DefaultOptions() Options {
	return Options{
		NGramSize:         term.DefaultNGramSize,
		Throttle:          DefaultThrottle,
		ThrottleCacheHits: true,
	}
}

type Highlighter struct {
	tagger    tagger.Tagger
	source    definition.Source
	assigner  highlight.ColorAssigner
	explainer inference.Explainer
	options   Options

	sleep func(ctx context.Context, d time.Duration) error
}

func NewHighlighter(
	tagger tagger.Tagger,
	source definition.Source,
	assigner highlight.ColorAssigner,
	explainer inference.Explainer,
	options Options,
) *Highlighter {
	if options.NGramSize < 2 {
		options.NGramSize = term.DefaultNGramSize
	}
	return &Highlighter{
		tagger:    tagger,
		source:    source,
		assigner:  assigner,
		explainer: explainer,
		options:   options,
		sleep:     sleep,
	}
}

// Stats summarizes one run.
type Stats struct {
	Candidates int
	Lookups    int
	Found      int
	FromStore  int
	Fetched    int
}

// Run tags input, resolves every candidate term and renders the highlighted
// text into state. A term absent from every source is skipped; tagger or
// store failures abort the run.
func (h *Highlighter) Run(ctx context.Context, state *session.State, input string) (Stats, error) {
	state.BeginRun(input)

	var stats Stats
	tokens, err := h.tagger.Tag(ctx, input)
	if err != nil {
		return stats, fmt.Errorf("tagger.Tag > %w", err)
	}

	words := term.Reassemble(tokens)
	candidates := term.Candidates(words, h.options.NGramSize, h.options.MultiWord)
	stats.Candidates = len(candidates)
	slog.Default().Debug("extracted candidates",
		"words", words,
		"candidates", len(candidates),
	)

	var owesPause bool
	tried := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		cleaned := term.Clean(candidate)
		if cleaned == "" {
			continue
		}
		if _, ok := tried[cleaned]; ok {
			continue
		}
		tried[cleaned] = struct{}{}

		if owesPause {
			if err := h.sleep(ctx, h.options.Throttle); err != nil {
				return stats, fmt.Errorf("sleep > %w", err)
			}
		}

		result, ok, err := h.source.Get(ctx, cleaned)
		stats.Lookups++
		if err != nil {
			return stats, fmt.Errorf("source.Get(%s) > %w", cleaned, err)
		}
		owesPause = h.options.ThrottleCacheHits || !ok || result.Origin != definition.OriginStore
		if !ok {
			slog.Default().Debug("no definition found", "term", cleaned)
			continue
		}

		stats.Found++
		switch result.Origin {
		case definition.OriginStore:
			stats.FromStore++
		case definition.OriginDictionary:
			stats.Fetched++
		}
		state.AddDefinition(cleaned, result.Definition)
		state.AssignColor(cleaned, h.assigner)
	}

	state.Segments = highlight.Render(input, state.Highlights())
	state.Rendered = highlight.HTML(state.Segments)
	slog.Default().Info("highlighted input",
		"lookups", stats.Lookups,
		"found", stats.Found,
		"from_store", stats.FromStore,
		"fetched", stats.Fetched,
	)
	return stats, nil
}

// Explain asks the explainer for a plain-language explanation of the current
// input and stores it in state.
func (h *Highlighter) Explain(ctx context.Context, state *session.State) (string, error) {
	if state.Len() == 0 {
		return "", ErrNoDefinitions
	}
	if h.explainer == nil {
		return "", ErrNoExplainer
	}

	explanation, err := h.explainer.Explain(ctx, inference.ExplainRequest{
		Text:        state.Input,
		Definitions: state.Definitions(),
	})
	if err != nil {
		return "", fmt.Errorf("explainer.Explain > %w", err)
	}
	state.Explanation = explanation
	return explanation, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
