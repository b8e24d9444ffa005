package sim

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/thompson/nfa"
)

// LiteralSearcher answers unanchored "does any substring match" queries.
//
// When the automaton's language is a finite set of non-empty strings
// within the extraction limits, the query is answered by an Aho-Corasick
// automaton over those strings. A language containing "" matches every
// haystack and an empty language matches none. Everything else falls back
// to Simulator.Contains.
//
// Like Simulator, a LiteralSearcher is not safe for concurrent use.
type LiteralSearcher struct {
	sim        *Simulator
	literals   []string
	finite     bool
	matchEmpty bool
	ac         *ahocorasick.Automaton
}

// NewLiteralSearcher creates a searcher for a finalized automaton
func NewLiteralSearcher(anfa *nfa.ANFA, config Config) (*LiteralSearcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s, err := New(anfa)
	if err != nil {
		return nil, err
	}

	ls := &LiteralSearcher{sim: s}
	literals, finite := Literals(anfa, config)
	if !finite {
		return ls, nil
	}
	ls.finite = true
	ls.literals = literals
	for _, lit := range literals {
		if lit == "" {
			ls.matchEmpty = true
			return ls, nil
		}
	}
	if len(literals) == 0 {
		return ls, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		// Simulation still answers correctly, just slower.
		return ls, nil
	}
	ls.ac = auto
	return ls, nil
}

// IsMatch reports whether any substring of haystack is in the language
func (ls *LiteralSearcher) IsMatch(haystack []byte) bool {
	switch {
	case ls.matchEmpty:
		return true
	case ls.finite && len(ls.literals) == 0:
		return false
	case ls.ac != nil:
		return ls.ac.IsMatch(haystack)
	default:
		return ls.sim.Contains(haystack)
	}
}

// Find returns the byte span of the first literal occurrence in haystack.
// It only answers when the Aho-Corasick path is active; otherwise it
// returns ok == false.
func (ls *LiteralSearcher) Find(haystack []byte) (start, end int, ok bool) {
	if ls.ac == nil {
		return -1, -1, false
	}
	m := ls.ac.Find(haystack, 0)
	if m == nil {
		return -1, -1, false
	}
	return m.Start, m.End, true
}

// Literals returns the extracted language, or nil if it is not finite
func (ls *LiteralSearcher) Literals() []string {
	return ls.literals
}

// UsesAhoCorasick reports whether IsMatch bypasses NFA simulation
func (ls *LiteralSearcher) UsesAhoCorasick() bool {
	return ls.ac != nil
}
