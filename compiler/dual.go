package compiler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coregx/thompson/nfa"
)

// Pair holds the two fragments a Dual operation produced, one per side
type Pair struct {
	Forward  nfa.AutomataRef
	Coverage nfa.AutomataRef
}

// Dual drives a forward and a coverage compiler in lockstep.
//
// Every call invokes the forward side and then the coverage side, so the
// two automata always advance by the same number of logical operations
// even though each may allocate a different number of states. The call
// fails with the first error in that order, wrapped in *SideError.
//
// Nothing is rolled back on failure: whatever the other side built stays
// in its table as valid but unreachable states. The Pair values held by
// the caller are out of step from then on, so the Dual refuses further
// operations with ErrDesynchronized.
//
// A Dual is not safe for concurrent use.
type Dual struct {
	forward  Compiler
	coverage Compiler
	fwd      *nfa.ANFA
	cov      *nfa.ANFA
	ops      int
	err      error
	log      zerolog.Logger
}

// NewDual creates a Dual over a Forward and a Coverage compiler, each
// building into its own fresh automaton
func NewDual(config Config) (*Dual, error) {
	return NewDualWith(NewForward(config), NewCoverage(config), config)
}

// NewDualWith creates a Dual over caller-supplied strategies
func NewDualWith(forward, coverage Compiler, config Config) (*Dual, error) {
	fwd, err := nfa.NewWithConfig(config.nfaConfig())
	if err != nil {
		return nil, err
	}
	cov, err := nfa.NewWithConfig(config.nfaConfig())
	if err != nil {
		return nil, err
	}
	return &Dual{
		forward:  forward,
		coverage: coverage,
		fwd:      fwd,
		cov:      cov,
		log:      config.Logger.With().Str("compiler", "dual").Logger(),
	}, nil
}

// Forward returns the forward automaton
func (d *Dual) Forward() *nfa.ANFA {
	return d.fwd
}

// Coverage returns the coverage automaton
func (d *Dual) Coverage() *nfa.ANFA {
	return d.cov
}

// Compilers returns the forward and coverage strategies
func (d *Dual) Compilers() (forward, coverage Compiler) {
	return d.forward, d.coverage
}

// Ops returns the number of logical operations applied to each side
func (d *Dual) Ops() int {
	return d.ops
}

// Err returns the failure that desynchronized the Dual, or nil
func (d *Dual) Err() error {
	return d.err
}

// Nothing implements Builder
func (d *Dual) Nothing() (Pair, error) {
	return d.step(nfa.OpNothing,
		func() (nfa.AutomataRef, error) { return d.forward.Nothing(d.fwd) },
		func() (nfa.AutomataRef, error) { return d.coverage.Nothing(d.cov) })
}

// Epsilon implements Builder
func (d *Dual) Epsilon() (Pair, error) {
	return d.step(nfa.OpEpsilon,
		func() (nfa.AutomataRef, error) { return d.forward.Epsilon(d.fwd) },
		func() (nfa.AutomataRef, error) { return d.coverage.Epsilon(d.cov) })
}

// Literal implements Builder
func (d *Dual) Literal(c rune) (Pair, error) {
	return d.step(nfa.OpLiteral,
		func() (nfa.AutomataRef, error) { return d.forward.Literal(d.fwd, c) },
		func() (nfa.AutomataRef, error) { return d.coverage.Literal(d.cov, c) })
}

// Concatenate implements Builder
func (d *Dual) Concatenate(a, b Pair) (Pair, error) {
	return d.step(nfa.OpConcatenate,
		func() (nfa.AutomataRef, error) { return d.forward.Concatenate(d.fwd, a.Forward, b.Forward) },
		func() (nfa.AutomataRef, error) { return d.coverage.Concatenate(d.cov, a.Coverage, b.Coverage) })
}

// Star implements Builder
func (d *Dual) Star(a Pair) (Pair, error) {
	return d.step(nfa.OpStar,
		func() (nfa.AutomataRef, error) { return d.forward.Star(d.fwd, a.Forward) },
		func() (nfa.AutomataRef, error) { return d.coverage.Star(d.cov, a.Coverage) })
}

// Union implements Builder
func (d *Dual) Union(a, b Pair) (Pair, error) {
	return d.step(nfa.OpUnion,
		func() (nfa.AutomataRef, error) { return d.forward.Union(d.fwd, a.Forward, b.Forward) },
		func() (nfa.AutomataRef, error) { return d.coverage.Union(d.cov, a.Coverage, b.Coverage) })
}

// Finalize records p as the boundary of both automata
func (d *Dual) Finalize(p Pair) error {
	_, err := d.step(nfa.OpFinalize,
		func() (nfa.AutomataRef, error) { return p.Forward, d.fwd.Finalize(p.Forward) },
		func() (nfa.AutomataRef, error) { return p.Coverage, d.cov.Finalize(p.Coverage) })
	return err
}

// Replay runs prog on both sides and finalizes the resulting pair
func (d *Dual) Replay(prog Program) (Pair, error) {
	p, err := Run[Pair](d, prog)
	if err != nil {
		return Pair{}, err
	}
	if err := d.Finalize(p); err != nil {
		return Pair{}, err
	}
	return p, nil
}

func (d *Dual) step(op nfa.Operation, forward, coverage func() (nfa.AutomataRef, error)) (Pair, error) {
	if d.err != nil {
		return Pair{}, fmt.Errorf("%w: %w", ErrDesynchronized, d.err)
	}

	fr, ferr := forward()
	cr, cerr := coverage()
	d.ops++

	var err error
	switch {
	case ferr != nil:
		err = &SideError{Side: SideForward, Op: op, Err: ferr}
	case cerr != nil:
		err = &SideError{Side: SideCoverage, Op: op, Err: cerr}
	default:
		return Pair{Forward: fr, Coverage: cr}, nil
	}

	d.err = err
	d.log.Warn().
		Err(err).
		Int("ops", d.ops).
		Int("forward_states", d.fwd.Len()).
		Int("coverage_states", d.cov.Len()).
		Msg("dual compiler lost lockstep")
	return Pair{}, err
}
