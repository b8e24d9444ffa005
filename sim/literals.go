package sim

import (
	"slices"
	"unicode/utf8"

	"github.com/coregx/thompson/internal/check"
	"github.com/coregx/thompson/nfa"
)

// Config limits finite-language extraction.
//
// Example:
//
//	config := sim.DefaultConfig()
//	config.MaxLiterals = 256 // allow larger literal alternations
//	searcher, err := sim.NewLiteralSearcher(anfa, config)
type Config struct {
	// MaxLiterals caps the number of distinct accepted strings.
	// Default: 64
	MaxLiterals int `validate:"min=1,max=10000"`

	// MaxLiteralLen caps the length, in symbols, of each accepted string.
	// Default: 64
	MaxLiteralLen int `validate:"min=1,max=4096"`

	// MaxVisits caps the number of state visits during extraction, which
	// bounds the work on automata with many redundant epsilon paths.
	// Default: 65536
	MaxVisits int `validate:"min=1,max=16777216"`
}

// DefaultConfig returns the default extraction limits
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxVisits:     1 << 16,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxLiterals: 1 to 10,000
//   - MaxLiteralLen: 1 to 4,096
//   - MaxVisits: 1 to 16,777,216
func (c Config) Validate() error {
	if fe := check.Struct(c); fe != nil {
		return &nfa.ConfigError{Field: fe.Field, Message: fe.Message}
	}
	return nil
}

// Literals enumerates the language of a finalized automaton.
//
// It returns the accepted strings in sorted order and true when the
// language is finite and within the configured limits. It returns false
// when the automaton is not finalized, when a symbol-consuming cycle is
// reachable, when a label is not a valid Unicode scalar value, or when any
// limit is exceeded. An empty, true result means
// the automaton accepts nothing.
func Literals(anfa *nfa.ANFA, config Config) ([]string, bool) {
	if !anfa.IsFinalized() {
		return nil, false
	}
	e := &enumerator{
		anfa:   anfa,
		config: config,
		onPath: make(map[nfa.QId]int),
		found:  make(map[string]struct{}),
	}
	if !e.walk(anfa.Q0()) {
		return nil, false
	}

	out := make([]string, 0, len(e.found))
	for s := range e.found {
		out = append(out, s)
	}
	slices.Sort(out)
	return out, true
}

type enumerator struct {
	anfa   *nfa.ANFA
	config Config
	visits int

	// onPath maps each state on the current path to the prefix length at
	// which it was entered.
	onPath map[nfa.QId]int
	prefix []rune
	found  map[string]struct{}
}

// walk explores every path from q, returning false to abort.
func (e *enumerator) walk(q nfa.QId) bool {
	e.visits++
	if e.visits > e.config.MaxVisits {
		return false
	}
	if depth, ok := e.onPath[q]; ok {
		// An epsilon-only cycle adds nothing; a cycle that consumed
		// symbols repeats them forever.
		return depth == len(e.prefix)
	}
	if q == e.anfa.F() {
		e.found[string(e.prefix)] = struct{}{}
		if len(e.found) > e.config.MaxLiterals {
			return false
		}
	}

	t, ok := e.anfa.State(q)
	if !ok {
		return true
	}
	e.onPath[q] = len(e.prefix)
	defer delete(e.onPath, q)

	switch t.Kind() {
	case nfa.KindSingle:
		label, next := t.Single()
		c, ok := label.Symbol()
		if !ok {
			return e.walk(next)
		}
		// Labels outside the scalar values have no byte encoding.
		if !utf8.ValidRune(c) || len(e.prefix) >= e.config.MaxLiteralLen {
			return false
		}
		e.prefix = append(e.prefix, c)
		ok = e.walk(next)
		e.prefix = e.prefix[:len(e.prefix)-1]
		return ok
	case nfa.KindFork:
		left, right := t.Fork()
		return e.walk(left) && e.walk(right)
	default:
		return true
	}
}
