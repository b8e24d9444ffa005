package compiler

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/coregx/thompson/nfa"
)

// Step records one operation applied by a Coverage compiler
type Step struct {
	// Ordinal is the zero-based position of the operation in the call
	// sequence
	Ordinal int

	Op     nfa.Operation
	Symbol rune // OpLiteral only

	// Probe is the epsilon state placed in front of the fragment. A run
	// that passes through Probe has entered this operation's fragment.
	Probe nfa.QId

	// Ref is the fragment returned to the caller; Ref.Q0 == Probe
	Ref nfa.AutomataRef

	// States is the number of states this operation appended
	States int
}

// Coverage builds a Thompson NFA annotated with provenance.
//
// Every operation builds its fragment the forward way and then prefixes it
// with one probe state (an epsilon edge into the fragment's entry). The
// automaton therefore accepts the same language as the forward one while
// allocating one extra state per operation. The compiler remembers which
// operation appended each state and which probe belongs to which
// operation, so a simulator trace can be mapped back to the operations it
// exercised.
//
// A Coverage compiler annotates exactly one automaton: it binds to the
// first automaton it is given and rejects any other with
// ErrForeignAutomaton. It assumes nothing else appends to that automaton.
type Coverage struct {
	log    zerolog.Logger
	anfa   *nfa.ANFA
	steps  []Step
	origin []int // state -> step ordinal, -1 for states not appended here
	probes map[nfa.QId]int
}

// NewCoverage creates a coverage compiler
func NewCoverage(config Config) *Coverage {
	return &Coverage{
		log:    config.Logger.With().Str("compiler", "coverage").Logger(),
		probes: make(map[nfa.QId]int),
	}
}

// Nothing implements Compiler
func (c *Coverage) Nothing(anfa *nfa.ANFA) (nfa.AutomataRef, error) {
	return c.apply(anfa, nfa.OpNothing, 0, func() (nfa.AutomataRef, error) {
		return anfa.Nothing(), nil
	})
}

// Epsilon implements Compiler
func (c *Coverage) Epsilon(anfa *nfa.ANFA) (nfa.AutomataRef, error) {
	return c.apply(anfa, nfa.OpEpsilon, 0, func() (nfa.AutomataRef, error) {
		return anfa.Epsilon(), nil
	})
}

// Literal implements Compiler
func (c *Coverage) Literal(anfa *nfa.ANFA, ch rune) (nfa.AutomataRef, error) {
	return c.apply(anfa, nfa.OpLiteral, ch, func() (nfa.AutomataRef, error) {
		return anfa.Literal(ch), nil
	})
}

// Concatenate implements Compiler
func (c *Coverage) Concatenate(anfa *nfa.ANFA, a, b nfa.AutomataRef) (nfa.AutomataRef, error) {
	return c.apply(anfa, nfa.OpConcatenate, 0, func() (nfa.AutomataRef, error) {
		return anfa.Concatenate(a, b)
	})
}

// Star implements Compiler
func (c *Coverage) Star(anfa *nfa.ANFA, a nfa.AutomataRef) (nfa.AutomataRef, error) {
	return c.apply(anfa, nfa.OpStar, 0, func() (nfa.AutomataRef, error) {
		return anfa.Star(a)
	})
}

// Union implements Compiler
func (c *Coverage) Union(anfa *nfa.ANFA, a, b nfa.AutomataRef) (nfa.AutomataRef, error) {
	return c.apply(anfa, nfa.OpUnion, 0, func() (nfa.AutomataRef, error) {
		return anfa.Union(a, b)
	})
}

func (c *Coverage) apply(anfa *nfa.ANFA, op nfa.Operation, sym rune, build func() (nfa.AutomataRef, error)) (nfa.AutomataRef, error) {
	if err := c.bind(anfa); err != nil {
		return nfa.AutomataRef{}, &nfa.BuildError{Op: op, StateID: nfa.InvalidQId, Err: err}
	}

	before := anfa.Len()
	r, err := build()
	if err != nil {
		return nfa.AutomataRef{}, err
	}
	probe := anfa.Epsilon()
	r, err = anfa.Concatenate(probe, r)
	if err != nil {
		// probe is fresh and r was just built, so both are live
		return nfa.AutomataRef{}, &nfa.BuildError{
			Op:      op,
			StateID: probe.Q0,
			Err:     fmt.Errorf("%w: probe: %w", nfa.ErrInternalInvariant, err),
		}
	}

	step := Step{
		Ordinal: len(c.steps),
		Op:      op,
		Symbol:  sym,
		Probe:   probe.Q0,
		Ref:     r,
		States:  anfa.Len() - before,
	}
	c.steps = append(c.steps, step)
	for len(c.origin) < anfa.Len() {
		c.origin = append(c.origin, step.Ordinal)
	}
	c.probes[probe.Q0] = step.Ordinal

	c.log.Debug().
		Int("ordinal", step.Ordinal).
		Stringer("op", op).
		Uint32("probe", uint32(step.Probe)).
		Uint32("f", uint32(r.F)).
		Int("appended", step.States).
		Msg("built fragment")
	return r, nil
}

func (c *Coverage) bind(anfa *nfa.ANFA) error {
	if c.anfa == nil {
		c.anfa = anfa
		for range anfa.Len() {
			c.origin = append(c.origin, -1)
		}
		return nil
	}
	if c.anfa != anfa {
		return ErrForeignAutomaton
	}
	return nil
}

// ANFA returns the automaton this compiler annotates, or nil before the
// first operation
func (c *Coverage) ANFA() *nfa.ANFA {
	return c.anfa
}

// Steps returns every operation applied so far, in call order
func (c *Coverage) Steps() []Step {
	return slices.Clone(c.steps)
}

// Provenance returns the operation that appended state q.
// Returns false for states this compiler did not append.
func (c *Coverage) Provenance(q nfa.QId) (Step, bool) {
	if q == nfa.InvalidQId || int(q) >= len(c.origin) || c.origin[q] < 0 {
		return Step{}, false
	}
	return c.steps[c.origin[q]], true
}

// Covered maps a set of visited states to the operations whose fragments
// were entered, as sorted ordinals without duplicates.
func (c *Coverage) Covered(states []nfa.QId) []int {
	var ordinals []int
	for _, q := range states {
		if ord, ok := c.probes[q]; ok {
			ordinals = append(ordinals, ord)
		}
	}
	slices.Sort(ordinals)
	return slices.Compact(ordinals)
}
