// Package sim executes finalized automata built by package nfa.
//
// The simulator is the classic Thompson/Pike set simulation: it keeps the
// set of states reachable after each input symbol, expanding epsilon and
// fork edges eagerly, and accepts when the automaton's exit state is in the
// set once the input is exhausted. Symbols are Unicode code points; input
// strings are decoded as UTF-8.
//
// For automata whose language is a small finite set of strings,
// LiteralSearcher answers unanchored queries with an Aho-Corasick
// automaton instead.
package sim

import (
	"errors"
	"unicode/utf8"

	"github.com/coregx/thompson/internal/sparse"
	"github.com/coregx/thompson/nfa"
)

// ErrNotFinalized indicates the automaton has no entry/exit yet
var ErrNotFinalized = errors.New("automaton not finalized")

// Simulator runs one finalized automaton.
// It reuses scratch sets between calls and is not safe for concurrent use;
// create one Simulator per goroutine over a shared automaton.
type Simulator struct {
	anfa  *nfa.ANFA
	q0, f nfa.QId
	curr  *sparse.Set
	next  *sparse.Set
	seen  *sparse.Set // union of all generations, for Trace
	stack []nfa.QId
}

// New creates a simulator for a finalized automaton
func New(anfa *nfa.ANFA) (*Simulator, error) {
	if !anfa.IsFinalized() {
		return nil, ErrNotFinalized
	}
	n := anfa.Len()
	return &Simulator{
		anfa:  anfa,
		curr:  sparse.New(n),
		next:  sparse.New(n),
		seen:  sparse.New(n),
		stack: make([]nfa.QId, 0, 16),
	}, nil
}

// Accepts reports whether anfa accepts the whole of input.
// Unfinalized automata accept nothing.
func Accepts(anfa *nfa.ANFA, input string) bool {
	s, err := New(anfa)
	if err != nil {
		return false
	}
	return s.Accepts(input)
}

// Accepts reports whether the automaton accepts the whole of input
func (s *Simulator) Accepts(input string) bool {
	s.reset()
	s.addClosure(s.curr, s.q0)

	for _, c := range input {
		s.step(c)
		if s.curr.Len() == 0 {
			return false
		}
	}
	return s.curr.Contains(uint32(s.f))
}

// Trace runs input and returns every state that was active at some point
// of the run, in the order first reached. The run stops early once no state
// is active.
func (s *Simulator) Trace(input string) []nfa.QId {
	s.Accepts(input)
	states := make([]nfa.QId, 0, s.seen.Len())
	for _, q := range s.seen.Values() {
		states = append(states, nfa.QId(q))
	}
	return states
}

// Contains reports whether any substring of haystack is accepted.
// A new thread is started at the entry state before every symbol.
func (s *Simulator) Contains(haystack []byte) bool {
	s.reset()

	for pos := 0; ; {
		s.addClosure(s.curr, s.q0)
		if s.curr.Contains(uint32(s.f)) {
			return true
		}
		if pos >= len(haystack) {
			return false
		}
		c, size := utf8.DecodeRune(haystack[pos:])
		s.step(c)
		pos += size
	}
}

// reset clears scratch state and picks up states or a new boundary added
// to the automaton since the last run.
func (s *Simulator) reset() {
	s.q0, s.f = s.anfa.Q0(), s.anfa.F()
	if n := s.anfa.Len(); n > s.curr.Capacity() {
		s.curr, s.next, s.seen = sparse.New(n), sparse.New(n), sparse.New(n)
		return
	}
	s.curr.Clear()
	s.next.Clear()
	s.seen.Clear()
}

// step advances every active state over c into the next generation.
func (s *Simulator) step(c rune) {
	s.next.Clear()
	for _, q := range s.curr.Values() {
		t, ok := s.anfa.State(nfa.QId(q))
		if !ok || t.Kind() != nfa.KindSingle {
			continue
		}
		if label, next := t.Single(); label.Matches(c) {
			s.addClosure(s.next, next)
		}
	}
	s.curr, s.next = s.next, s.curr
}

// addClosure inserts q and everything reachable from it over epsilon
// edges. Loop-based: fork edges push the right branch and continue left.
func (s *Simulator) addClosure(set *sparse.Set, q nfa.QId) {
	s.stack = append(s.stack[:0], q)
	for len(s.stack) > 0 {
		n := len(s.stack)
		q := s.stack[n-1]
		s.stack = s.stack[:n-1]

		if !set.Insert(uint32(q)) {
			continue
		}
		s.seen.Insert(uint32(q))

		t, ok := s.anfa.State(q)
		if !ok {
			continue
		}
		switch t.Kind() {
		case nfa.KindSingle:
			if label, next := t.Single(); label.IsEpsilon() {
				s.stack = append(s.stack, next)
			}
		case nfa.KindFork:
			left, right := t.Fork()
			s.stack = append(s.stack, right, left)
		}
	}
}
