package nfa

import "fmt"

// Operation names one step of the construction algebra.
// It tags errors and compiler logs and is the opcode of compiler programs.
type Operation uint8

const (
	// OpNothing builds a fragment accepting no string.
	OpNothing Operation = iota

	// OpEpsilon builds a fragment accepting only the empty string.
	OpEpsilon

	// OpLiteral builds a fragment accepting one symbol.
	OpLiteral

	// OpConcatenate joins two fragments in sequence.
	OpConcatenate

	// OpStar repeats one fragment zero or more times.
	OpStar

	// OpUnion accepts either of two fragments.
	OpUnion

	// OpFinalize fixes the automaton's overall entry and exit.
	OpFinalize

	// OpEmbed copies a finalized automaton into another as a fragment.
	OpEmbed
)

// Arity returns the number of fragments the operation consumes.
func (o Operation) Arity() int {
	switch o {
	case OpConcatenate, OpUnion:
		return 2
	case OpStar, OpFinalize:
		return 1
	default:
		return 0
	}
}

// String returns the operation name
func (o Operation) String() string {
	switch o {
	case OpNothing:
		return "nothing"
	case OpEpsilon:
		return "epsilon"
	case OpLiteral:
		return "literal"
	case OpConcatenate:
		return "concatenate"
	case OpStar:
		return "star"
	case OpUnion:
		return "union"
	case OpFinalize:
		return "finalize"
	case OpEmbed:
		return "embed"
	default:
		return fmt.Sprintf("Operation(%d)", o)
	}
}
