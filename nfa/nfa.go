package nfa

import (
	"fmt"
)

// QId uniquely identifies a state in an automaton's state table.
// It is an index into the table and stays valid for the automaton's lifetime.
type QId uint32

// InvalidQId marks an unset state (e.g. the entry of an unfinalized ANFA).
const InvalidQId QId = 0xFFFFFFFF

// Kind identifies the shape of a state's transition record.
type Kind uint8

const (
	// KindEmpty has no outgoing edge. A fragment's dangling final state
	// is always empty until a composition patches it.
	KindEmpty Kind = iota

	// KindSingle has one edge, labelled or epsilon, to one state.
	KindSingle

	// KindFork has exactly two epsilon edges. It is the only source of
	// branching (union) and looping (star).
	KindFork
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindSingle:
		return "Single"
	case KindFork:
		return "Fork"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Label is an edge label: either an input symbol or epsilon.
// The zero Label is epsilon.
type Label struct {
	sym rune
	ok  bool
}

// Sym returns the label for input symbol c.
func Sym(c rune) Label {
	return Label{sym: c, ok: true}
}

// Symbol returns the label's symbol, or (0, false) for epsilon.
func (l Label) Symbol() (rune, bool) {
	return l.sym, l.ok
}

// IsEpsilon returns true if the edge consumes no input.
func (l Label) IsEpsilon() bool {
	return !l.ok
}

// Matches returns true if the edge consumes c.
func (l Label) Matches(c rune) bool {
	return l.ok && l.sym == c
}

// String returns the quoted symbol or "ε".
func (l Label) String() string {
	if !l.ok {
		return "ε"
	}
	return fmt.Sprintf("%q", l.sym)
}

// Transition is the outgoing edge record of one state.
// The kind determines which fields are meaningful.
//
// A state never has more than two edges, and two edges are always
// unlabelled; the constructors below are the only way to build records,
// so the invariant holds by construction.
type Transition struct {
	kind  Kind
	label Label // KindSingle only
	next  QId   // KindSingle target, KindFork first target
	alt   QId   // KindFork second target
}

func emptyTransition() Transition {
	return Transition{kind: KindEmpty, next: InvalidQId, alt: InvalidQId}
}

func singleTransition(label Label, next QId) Transition {
	return Transition{kind: KindSingle, label: label, next: next, alt: InvalidQId}
}

func forkTransition(left, right QId) Transition {
	return Transition{kind: KindFork, next: left, alt: right}
}

// Kind returns the record's shape
func (t Transition) Kind() Kind {
	return t.kind
}

// IsEmpty returns true if the state has no outgoing edge
func (t Transition) IsEmpty() bool {
	return t.kind == KindEmpty
}

// Single returns the label and target of a KindSingle record.
// Returns (epsilon, InvalidQId) for other kinds.
func (t Transition) Single() (Label, QId) {
	if t.kind == KindSingle {
		return t.label, t.next
	}
	return Label{}, InvalidQId
}

// Fork returns the two targets of a KindFork record.
// Returns (InvalidQId, InvalidQId) for other kinds.
func (t Transition) Fork() (left, right QId) {
	if t.kind == KindFork {
		return t.next, t.alt
	}
	return InvalidQId, InvalidQId
}

// Edges returns the number of outgoing edges (0, 1 or 2)
func (t Transition) Edges() int {
	switch t.kind {
	case KindSingle:
		return 1
	case KindFork:
		return 2
	default:
		return 0
	}
}

// String returns a human-readable representation of the record
func (t Transition) String() string {
	switch t.kind {
	case KindEmpty:
		return "Empty"
	case KindSingle:
		return fmt.Sprintf("Single %s -> %d", t.label, t.next)
	case KindFork:
		return fmt.Sprintf("Fork -> [%d, %d]", t.next, t.alt)
	default:
		return fmt.Sprintf("Unknown(%d)", t.kind)
	}
}

// AutomataRef identifies one fragment under construction by its entry
// state Q0 and its exit state F.
//
// While the ref is live, F's record is empty. Composition operators patch
// that slot, after which the ref is consumed and must not be composed
// again. Refs are plain values; nothing enforces consumption at the type
// level.
type AutomataRef struct {
	Q0 QId
	F  QId
}

// String returns a human-readable representation of the ref
func (r AutomataRef) String() string {
	return fmt.Sprintf("Ref(%d -> %d)", r.Q0, r.F)
}
