package compiler

import (
	"fmt"
	"strings"

	"github.com/coregx/thompson/nfa"
)

// Op is one instruction of a Program
type Op struct {
	Kind   nfa.Operation
	Symbol rune // OpLiteral only
}

// NothingOp returns an instruction pushing a fragment accepting nothing
func NothingOp() Op { return Op{Kind: nfa.OpNothing} }

// EpsilonOp returns an instruction pushing a fragment accepting ""
func EpsilonOp() Op { return Op{Kind: nfa.OpEpsilon} }

// LiteralOp returns an instruction pushing a fragment accepting c
func LiteralOp(c rune) Op { return Op{Kind: nfa.OpLiteral, Symbol: c} }

// ConcatOp returns an instruction concatenating the top two fragments
func ConcatOp() Op { return Op{Kind: nfa.OpConcatenate} }

// StarOp returns an instruction starring the top fragment
func StarOp() Op { return Op{Kind: nfa.OpStar} }

// UnionOp returns an instruction unioning the top two fragments
func UnionOp() Op { return Op{Kind: nfa.OpUnion} }

// String returns the postfix token for the instruction
func (o Op) String() string {
	switch o.Kind {
	case nfa.OpNothing:
		return "∅"
	case nfa.OpEpsilon:
		return "ε"
	case nfa.OpLiteral:
		return fmt.Sprintf("%q", o.Symbol)
	case nfa.OpConcatenate:
		return "."
	case nfa.OpStar:
		return "*"
	case nfa.OpUnion:
		return "|"
	default:
		return o.Kind.String()
	}
}

// Program is a postfix instruction stream, as produced by a post-order
// walk of a regex syntax tree. For example (a|b)*b is
//
//	'a' 'b' | * 'b' .
type Program []Op

// String returns the program in postfix notation
func (p Program) String() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(op.String())
	}
	return sb.String()
}

// Builder is anything that can execute construction operations with
// fragments of type R: a Bound compiler (R = nfa.AutomataRef) or a Dual
// (R = Pair).
type Builder[R any] interface {
	Nothing() (R, error)
	Epsilon() (R, error)
	Literal(c rune) (R, error)
	Concatenate(a, b R) (R, error)
	Star(a R) (R, error)
	Union(a, b R) (R, error)
}

// Run executes prog against b with an operand stack and returns the single
// fragment left at the end. It stops at the first failing instruction.
func Run[R any](b Builder[R], prog Program) (R, error) {
	var zero R
	stack := make([]R, 0, 8)

	for i, op := range prog {
		// Finalize is the caller's step, never an instruction.
		if op.Kind >= nfa.OpFinalize {
			return zero, &ProgramError{Index: i, Op: op, Err: ErrInvalidOp}
		}
		if len(stack) < op.Kind.Arity() {
			return zero, &ProgramError{Index: i, Op: op, Err: nfa.ErrInsufficientOperands}
		}

		var (
			r   R
			err error
		)
		switch op.Kind {
		case nfa.OpNothing:
			r, err = b.Nothing()
		case nfa.OpEpsilon:
			r, err = b.Epsilon()
		case nfa.OpLiteral:
			r, err = b.Literal(op.Symbol)
		case nfa.OpConcatenate:
			r, err = b.Concatenate(stack[len(stack)-2], stack[len(stack)-1])
		case nfa.OpStar:
			r, err = b.Star(stack[len(stack)-1])
		case nfa.OpUnion:
			r, err = b.Union(stack[len(stack)-2], stack[len(stack)-1])
		default:
			err = ErrInvalidOp
		}
		if err != nil {
			return zero, &ProgramError{Index: i, Op: op, Err: err}
		}
		stack = append(stack[:len(stack)-op.Kind.Arity()], r)
	}

	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return zero, &ProgramError{Index: len(prog), Op: Op{Kind: nfa.OpFinalize}, Err: nfa.ErrInsufficientOperands}
	default:
		return zero, &ProgramError{Index: len(prog), Op: Op{Kind: nfa.OpFinalize}, Err: nfa.ErrUnconsumedOperands}
	}
}
