// Package session holds the mutable state of one highlighting session.
package session

import (
	"github.com/hukuksozluk/vurgu/internal/highlight"
	"github.com/hukuksozluk/vurgu/internal/inference"
)

// PanelEntry is one row of the definitions panel.
type PanelEntry struct {
	Term       string         `json:"term" yaml:"term"`
	Definition string         `json:"definition" yaml:"definition"`
	Color      highlight.Pair `json:"color" yaml:"color"`
}

// State is passed by reference through a run. It is not safe for concurrent use.
type State struct {
	Input       string
	Segments    []highlight.Segment
	Rendered    string
	Explanation string

	terms       []string
	definitions map[string]string
	colors      map[string]highlight.Pair
}

func New() *State {
	return &State{
		definitions: make(map[string]string),
		colors:      make(map[string]highlight.Pair),
	}
}

// BeginRun starts a run over input. Colors survive so a term keeps its color
// across runs of the same session.
func (s *State) BeginRun(input string) {
	s.Input = input
	s.Segments = nil
	s.Rendered = ""
	s.Explanation = ""
	s.terms = nil
	s.definitions = make(map[string]string)
	if s.colors == nil {
		s.colors = make(map[string]highlight.Pair)
	}
}

// Definition returns the definition found for term in the current run.
func (s *State) Definition(term string) (string, bool) {
	definition, ok := s.definitions[term]
	return definition, ok
}

// AddDefinition records the first definition of term. Later calls for the
// same term are ignored.
func (s *State) AddDefinition(term, definition string) {
	if s.definitions == nil {
		s.definitions = make(map[string]string)
	}
	if _, ok := s.definitions[term]; ok {
		return
	}
	s.definitions[term] = definition
	s.terms = append(s.terms, term)
}

// AssignColor returns the color of term, drawing one from assigner the first time.
// Terms without a definition get no color.
func (s *State) AssignColor(term string, assigner highlight.ColorAssigner) (highlight.Pair, bool) {
	if _, ok := s.definitions[term]; !ok {
		return highlight.Pair{}, false
	}
	if s.colors == nil {
		s.colors = make(map[string]highlight.Pair)
	}
	if pair, ok := s.colors[term]; ok {
		return pair, true
	}
	pair := assigner.Assign(term)
	s.colors[term] = pair
	return pair, true
}

// Color returns the color assigned to term, if any.
func (s *State) Color(term string) (highlight.Pair, bool) {
	pair, ok := s.colors[term]
	return pair, ok
}

// Highlights maps every defined term of the current run to its color.
func (s *State) Highlights() map[string]highlight.Pair {
	highlights := make(map[string]highlight.Pair, len(s.terms))
	for _, term := range s.terms {
		if pair, ok := s.colors[term]; ok {
			highlights[term] = pair
		}
	}
	return highlights
}

// Panel lists the definitions of the current run in discovery order.
func (s *State) Panel() []PanelEntry {
	entries := make([]PanelEntry, 0, len(s.terms))
	for _, term := range s.terms {
		entries = append(entries, PanelEntry{
			Term:       term,
			Definition: s.definitions[term],
			Color:      s.colors[term],
		})
	}
	return entries
}

func (s *State) Definitions() []inference.TermDefinition {
	definitions := make([]inference.TermDefinition, 0, len(s.terms))
	for _, term := range s.terms {
		definitions = append(definitions, inference.TermDefinition{
			Term:       term,
			Definition: s.definitions[term],
		})
	}
	return definitions
}

func (s *State) Len() int {
	return len(s.terms)
}

// Reset clears everything, colors included.
func (s *State) Reset() {
	*s = *New()
}
