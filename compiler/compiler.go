// Package compiler replays construction operations against automata it
// does not own.
//
// A Compiler is one construction strategy: Forward builds the plain
// Thompson NFA used for matching, Coverage builds an equivalent automaton
// whose extra probe states record which operation produced which fragment.
// Dual drives a forward and a coverage compiler in lockstep from a single
// call sequence, and Run interprets a postfix Program against any Builder.
package compiler

import (
	"github.com/rs/zerolog"

	"github.com/coregx/thompson/nfa"
)

// Compiler is a construction strategy applied to a caller-owned automaton.
//
// Each method appends to or patches anfa and returns the resulting
// fragment. Composite methods require live operands, exactly as the
// corresponding nfa.ANFA methods do.
type Compiler interface {
	Nothing(anfa *nfa.ANFA) (nfa.AutomataRef, error)
	Epsilon(anfa *nfa.ANFA) (nfa.AutomataRef, error)
	Literal(anfa *nfa.ANFA, c rune) (nfa.AutomataRef, error)
	Concatenate(anfa *nfa.ANFA, a, b nfa.AutomataRef) (nfa.AutomataRef, error)
	Star(anfa *nfa.ANFA, a nfa.AutomataRef) (nfa.AutomataRef, error)
	Union(anfa *nfa.ANFA, a, b nfa.AutomataRef) (nfa.AutomataRef, error)
}

// Config configures compilers and the automata they allocate.
//
// Example:
//
//	config := compiler.DefaultConfig()
//	config.Logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	dual, err := compiler.NewDual(config)
type Config struct {
	// InitialCapacity is the number of states preallocated per automaton.
	// Default: 16
	InitialCapacity int

	// Logger receives one debug event per operation and a warning when a
	// Dual loses lockstep.
	// Default: zerolog.Nop()
	Logger zerolog.Logger `validate:"-"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		InitialCapacity: nfa.DefaultConfig().InitialCapacity,
		Logger:          zerolog.Nop(),
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	return c.nfaConfig().Validate()
}

func (c Config) nfaConfig() nfa.Config {
	return nfa.Config{InitialCapacity: c.InitialCapacity}
}

// Forward is the standard Thompson construction strategy.
// It delegates every operation to the automaton unchanged.
type Forward struct {
	log zerolog.Logger
}

// NewForward creates a forward compiler
func NewForward(config Config) *Forward {
	return &Forward{log: config.Logger.With().Str("compiler", "forward").Logger()}
}

// Nothing implements Compiler
func (c *Forward) Nothing(anfa *nfa.ANFA) (nfa.AutomataRef, error) {
	r := anfa.Nothing()
	c.trace(anfa, nfa.OpNothing, r)
	return r, nil
}

// Epsilon implements Compiler
func (c *Forward) Epsilon(anfa *nfa.ANFA) (nfa.AutomataRef, error) {
	r := anfa.Epsilon()
	c.trace(anfa, nfa.OpEpsilon, r)
	return r, nil
}

// Literal implements Compiler
func (c *Forward) Literal(anfa *nfa.ANFA, ch rune) (nfa.AutomataRef, error) {
	r := anfa.Literal(ch)
	c.trace(anfa, nfa.OpLiteral, r)
	return r, nil
}

// Concatenate implements Compiler
func (c *Forward) Concatenate(anfa *nfa.ANFA, a, b nfa.AutomataRef) (nfa.AutomataRef, error) {
	r, err := anfa.Concatenate(a, b)
	if err != nil {
		return nfa.AutomataRef{}, err
	}
	c.trace(anfa, nfa.OpConcatenate, r)
	return r, nil
}

// Star implements Compiler
func (c *Forward) Star(anfa *nfa.ANFA, a nfa.AutomataRef) (nfa.AutomataRef, error) {
	r, err := anfa.Star(a)
	if err != nil {
		return nfa.AutomataRef{}, err
	}
	c.trace(anfa, nfa.OpStar, r)
	return r, nil
}

// Union implements Compiler
func (c *Forward) Union(anfa *nfa.ANFA, a, b nfa.AutomataRef) (nfa.AutomataRef, error) {
	r, err := anfa.Union(a, b)
	if err != nil {
		return nfa.AutomataRef{}, err
	}
	c.trace(anfa, nfa.OpUnion, r)
	return r, nil
}

func (c *Forward) trace(anfa *nfa.ANFA, op nfa.Operation, r nfa.AutomataRef) {
	c.log.Debug().
		Stringer("op", op).
		Uint32("q0", uint32(r.Q0)).
		Uint32("f", uint32(r.F)).
		Int("states", anfa.Len()).
		Msg("built fragment")
}

// Bound pairs a Compiler with the automaton it builds into, giving the
// method set Run expects.
type Bound struct {
	compiler Compiler
	anfa     *nfa.ANFA
}

// Bind returns a Builder applying c to anfa
func Bind(c Compiler, anfa *nfa.ANFA) *Bound {
	return &Bound{compiler: c, anfa: anfa}
}

// ANFA returns the automaton being built
func (b *Bound) ANFA() *nfa.ANFA {
	return b.anfa
}

// Nothing implements Builder
func (b *Bound) Nothing() (nfa.AutomataRef, error) { return b.compiler.Nothing(b.anfa) }

// Epsilon implements Builder
func (b *Bound) Epsilon() (nfa.AutomataRef, error) { return b.compiler.Epsilon(b.anfa) }

// Literal implements Builder
func (b *Bound) Literal(c rune) (nfa.AutomataRef, error) { return b.compiler.Literal(b.anfa, c) }

// Concatenate implements Builder
func (b *Bound) Concatenate(x, y nfa.AutomataRef) (nfa.AutomataRef, error) {
	return b.compiler.Concatenate(b.anfa, x, y)
}

// Star implements Builder
func (b *Bound) Star(x nfa.AutomataRef) (nfa.AutomataRef, error) {
	return b.compiler.Star(b.anfa, x)
}

// Union implements Builder
func (b *Bound) Union(x, y nfa.AutomataRef) (nfa.AutomataRef, error) {
	return b.compiler.Union(b.anfa, x, y)
}

// Build runs prog with c against a fresh automaton and finalizes it
func Build(c Compiler, prog Program, config Config) (*nfa.ANFA, error) {
	anfa, err := nfa.NewWithConfig(config.nfaConfig())
	if err != nil {
		return nil, err
	}
	r, err := Run[nfa.AutomataRef](Bind(c, anfa), prog)
	if err != nil {
		return nil, err
	}
	if err := anfa.Finalize(r); err != nil {
		return nil, err
	}
	return anfa, nil
}
