package compiler

import (
	"errors"
	"fmt"

	"github.com/coregx/thompson/nfa"
)

var (
	// ErrDesynchronized indicates a Dual was used after one of its calls
	// failed; its two automata no longer advance in lockstep
	ErrDesynchronized = errors.New("dual compiler desynchronized")

	// ErrForeignAutomaton indicates a Coverage compiler was handed an
	// automaton other than the one it annotates
	ErrForeignAutomaton = errors.New("automaton not owned by this compiler")

	// ErrInvalidOp indicates a program instruction with an unknown opcode
	ErrInvalidOp = errors.New("invalid program instruction")
)

// Side names one half of a Dual
type Side uint8

const (
	// SideForward is the matching automaton
	SideForward Side = iota

	// SideCoverage is the provenance automaton
	SideCoverage
)

// String returns the side name
func (s Side) String() string {
	switch s {
	case SideForward:
		return "forward"
	case SideCoverage:
		return "coverage"
	default:
		return fmt.Sprintf("Side(%d)", s)
	}
}

// SideError reports which half of a Dual failed first
type SideError struct {
	Side Side
	Op   nfa.Operation
	Err  error
}

// Error implements the error interface
func (e *SideError) Error() string {
	return fmt.Sprintf("%s compiler: %s: %v", e.Side, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *SideError) Unwrap() error {
	return e.Err
}

// ProgramError reports the failing instruction of a Program
type ProgramError struct {
	Index int
	Op    Op
	Err   error
}

// Error implements the error interface
func (e *ProgramError) Error() string {
	return fmt.Sprintf("program instruction %d (%s): %v", e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ProgramError) Unwrap() error {
	return e.Err
}
