package definition

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=source.go -destination=../mocks/definition/mock_source.go -package=mock_definition

// Origin tells where a definition was found.
type Origin string

const (
	OriginSession    Origin = "session"
	OriginStore      Origin = "store"
	OriginDictionary Origin = "dictionary"
)

// Result is a definition together with its origin.
type Result struct {
	Term       string
	Definition string
	Origin     Origin
}

// Source answers definition lookups. A miss is (Result{}, false, nil).
type Source interface {
	Get(ctx context.Context, term string) (Result, bool, error)
}

// Lookup fetches a definition from an external dictionary.
type Lookup interface {
	Lookup(ctx context.Context, term string) (string, bool, error)
}

// StoreSource serves definitions from a Store.
type StoreSource struct {
	store Store
}

func NewStoreSource(store Store) *StoreSource {
	return &StoreSource{store: store}
}

func (s *StoreSource) Get(ctx context.Context, term string) (Result, bool, error) {
	definition, ok, err := s.store.Get(ctx, term)
	if err != nil {
		return Result{}, false, fmt.Errorf("store.Get(%s) > %w", term, err)
	}
	if !ok {
		return Result{}, false, nil
	}
	return Result{Term: term, Definition: definition, Origin: OriginStore}, true, nil
}

// FetchSource asks the dictionary and writes every found definition to the store.
// Misses are not written, so they are fetched again next time.
type FetchSource struct {
	lookup Lookup
	store  Store
}

func NewFetchSource(lookup Lookup, store Store) *FetchSource {
	return &FetchSource{lookup: lookup, store: store}
}

func (s *FetchSource) Get(ctx context.Context, term string) (Result, bool, error) {
	definition, ok, err := s.lookup.Lookup(ctx, term)
	if err != nil {
		slog.Default().Debug("dictionary lookup failed",
			"term", term,
			"error", err,
		)
		return Result{}, false, nil
	}
	if !ok {
		return Result{}, false, nil
	}

	if err := s.store.Put(ctx, term, definition); err != nil {
		return Result{}, false, fmt.Errorf("store.Put(%s) > %w", term, err)
	}
	return Result{Term: term, Definition: definition, Origin: OriginDictionary}, true, nil
}

// Chain consults sources in order and returns the first hit.
type Chain []Source

// NewChain builds the standard store-then-dictionary chain.
func NewChain(store Store, lookup Lookup) Chain {
	return Chain{
		NewStoreSource(store),
		NewFetchSource(lookup, store),
	}
}

func (c Chain) Get(ctx context.Context, term string) (Result, bool, error) {
	for _, source := range c {
		result, ok, err := source.Get(ctx, term)
		if err != nil {
			return Result{}, false, err
		}
		if ok {
			return result, true, nil
		}
	}
	return Result{}, false, nil
}
