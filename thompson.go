// Package thompson builds nondeterministic finite automata algebraically,
// using Thompson's construction.
//
// Automata are assembled from three primitive acceptors (nothing, epsilon,
// literal) and three composition operators (concatenation, union, Kleene
// star). Package nfa holds the automaton and its construction algebra,
// package compiler replays operation sequences through interchangeable
// construction strategies, and package sim runs finished automata.
//
// This package is the front end: it translates regex patterns into
// construction programs and drives the compilers.
//
// Basic usage:
//
//	anfa, err := thompson.Compile(`(a|b)*b`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sim.Accepts(anfa, "abab")) // true
//
// Dual compilation builds a matching automaton and a provenance-annotated
// one from the same pattern:
//
//	dual, err := thompson.CompileDual(`ab+`)
//	trace, _ := sim.New(dual.Coverage())
//	_, cov := dual.Compilers()
//	ops := cov.(*compiler.Coverage).Covered(trace.Trace("abb"))
//
// Limitations:
//   - No anchors, word boundaries or any-char (.)
//   - No case-insensitive matching
//   - Character classes only up to Config.MaxClassSize code points
//   - Acceptance only; no submatch positions
package thompson

import (
	"github.com/coregx/thompson/compiler"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/sim"
)

// Compile translates pattern and builds a finalized forward automaton.
//
// Example:
//
//	anfa, err := thompson.Compile(`colou?r`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*nfa.ANFA, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration
func CompileWithConfig(pattern string, config Config) (*nfa.ANFA, error) {
	prog, err := ParseWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	anfa, err := compiler.Build(compiler.NewForward(config.Compiler), prog, config.Compiler)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return anfa, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var hex = thompson.MustCompile(`0x[0-9a-f]+`)
func MustCompile(pattern string) *nfa.ANFA {
	anfa, err := Compile(pattern)
	if err != nil {
		panic("thompson: Compile(`" + pattern + "`): " + err.Error())
	}
	return anfa
}

// CompileDual replays the pattern's program through a forward and a
// coverage compiler in lockstep and finalizes both automata.
func CompileDual(pattern string) (*compiler.Dual, error) {
	return CompileDualWithConfig(pattern, DefaultConfig())
}

// CompileDualWithConfig is CompileDual with custom configuration
func CompileDualWithConfig(pattern string, config Config) (*compiler.Dual, error) {
	prog, err := ParseWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	dual, err := compiler.NewDual(config.Compiler)
	if err != nil {
		return nil, err
	}
	if _, err := dual.Replay(prog); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return dual, nil
}

// CompileSearcher compiles pattern for unanchored search. Patterns denoting
// a small finite set of strings are searched with Aho-Corasick.
//
// Example:
//
//	s, err := thompson.CompileSearcher(`error|warn(ing)?`, sim.DefaultConfig())
//	if s.IsMatch(line) {
//	    ...
//	}
func CompileSearcher(pattern string, config sim.Config) (*sim.LiteralSearcher, error) {
	anfa, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return sim.NewLiteralSearcher(anfa, config)
}
