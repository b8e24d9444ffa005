// Package nfa builds Thompson NFA fragments algebraically.
//
// An ANFA owns an append-only state table. Primitive builders (Nothing,
// Epsilon, Literal) append fresh fragments; composition operators
// (Concatenate, Star, Union) wire fragments together by patching the
// empty "dangling" final state of each operand and appending at most three
// new states. Every operation returns an AutomataRef naming the resulting
// fragment's entry and exit, and the caller threads refs between calls.
// Finalize records one ref as the automaton's overall entry and exit.
// Embed, Concat, Alternate and Closure compose whole finalized automata
// by copying their states.
//
// Executing, determinizing and printing automata are left to other
// packages; see package sim for a simulator.
package nfa

import (
	"errors"
	"fmt"
)

// Construction errors. None are retryable: each one means the caller
// sequenced operations incorrectly and must abandon the current build.
var (
	// ErrInsufficientOperands indicates a composition ran without the one
	// or two live fragments it needs (stack-style usage only)
	ErrInsufficientOperands = errors.New("insufficient operands")

	// ErrDanglingState indicates an operand's final state already carries
	// a transition, i.e. the ref was consumed by an earlier composition
	ErrDanglingState = errors.New("final state is not dangling")

	// ErrUnconsumedOperands indicates fragments were left over when a
	// stack-style build was finalized
	ErrUnconsumedOperands = errors.New("unconsumed operands")

	// ErrInternalInvariant indicates an impossible internal condition
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrInvalidState indicates a state ID outside the state table
	ErrInvalidState = errors.New("invalid NFA state")
)

// BuildError reports which operation failed and at which state
type BuildError struct {
	Op      Operation
	StateID QId
	Err     error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidQId {
		return fmt.Sprintf("NFA %s failed at state %d: %v", e.Op, e.StateID, e.Err)
	}
	return fmt.Sprintf("NFA %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *BuildError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "nfa: invalid config: " + e.Field + ": " + e.Message
}
