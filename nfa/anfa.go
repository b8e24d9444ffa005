package nfa

import (
	"fmt"
)

// ANFA is an automaton under algebraic construction.
//
// It exclusively owns its state table. Until Finalize is called the
// automaton is only reachable through the AutomataRefs the caller holds;
// afterwards Q0 and F name its overall entry and accepting exit.
//
// An ANFA is not safe for concurrent mutation. A finalized ANFA that is no
// longer being built may be read from multiple goroutines.
type ANFA struct {
	delta Delta
	q0    QId
	f     QId
}

// New creates an empty automaton with default capacity
func New() *ANFA {
	return newANFA(DefaultConfig().InitialCapacity)
}

// NewWithConfig creates an empty automaton with the given configuration
func NewWithConfig(config Config) (*ANFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newANFA(config.InitialCapacity), nil
}

func newANFA(capacity int) *ANFA {
	return &ANFA{
		delta: newDelta(capacity),
		q0:    InvalidQId,
		f:     InvalidQId,
	}
}

// Nothing appends a fragment accepting no string: two empty states,
// with no path from entry to exit.
func (a *ANFA) Nothing() AutomataRef {
	q0 := a.delta.push(emptyTransition())
	f := a.delta.push(emptyTransition())
	return AutomataRef{Q0: q0, F: f}
}

// Epsilon appends a fragment accepting only the empty string: a single
// empty state that is both entry and exit.
func (a *ANFA) Epsilon() AutomataRef {
	q := a.delta.push(emptyTransition())
	return AutomataRef{Q0: q, F: q}
}

// Literal appends a fragment accepting exactly the symbol c.
func (a *ANFA) Literal(c rune) AutomataRef {
	// f is appended right after q0, so its ID is known up front.
	q0 := a.delta.push(singleTransition(Sym(c), QId(a.delta.Len()+1))) //nolint:gosec // G115: push panics first on overflow
	f := a.delta.push(emptyTransition())
	return AutomataRef{Q0: q0, F: f}
}

// Concatenate wires x's exit to y's entry with an epsilon edge.
// No states are appended. The result runs from x.Q0 to y.F.
func (a *ANFA) Concatenate(x, y AutomataRef) (AutomataRef, error) {
	if err := a.checkOperands(OpConcatenate, x, y); err != nil {
		return AutomataRef{}, err
	}
	a.delta.patch(x.F, singleTransition(Label{}, y.Q0))
	return AutomataRef{Q0: x.Q0, F: y.F}, nil
}

// Star wraps x in a loop accepting zero or more repetitions.
//
// Three states are appended: an entry E with an epsilon edge to a fork U,
// the fork U branching to x.Q0 and to a new exit F, and the empty exit F.
// x's exit is patched back to U.
func (a *ANFA) Star(x AutomataRef) (AutomataRef, error) {
	if err := a.checkLive(OpStar, x); err != nil {
		return AutomataRef{}, err
	}
	base := a.delta.Len()
	u := QId(base + 1) //nolint:gosec // G115: push panics first on overflow
	f := QId(base + 2) //nolint:gosec // G115: push panics first on overflow

	e := a.delta.push(singleTransition(Label{}, u))
	a.delta.push(forkTransition(x.Q0, f))
	a.delta.push(emptyTransition())
	a.delta.patch(x.F, singleTransition(Label{}, u))
	return AutomataRef{Q0: e, F: f}, nil
}

// Union accepts whatever x or y accepts.
//
// Two states are appended: a fork U branching to x.Q0 and y.Q0, and an
// empty exit F. Both operands' exits are patched to F.
func (a *ANFA) Union(x, y AutomataRef) (AutomataRef, error) {
	if err := a.checkOperands(OpUnion, x, y); err != nil {
		return AutomataRef{}, err
	}
	u := a.delta.push(forkTransition(x.Q0, y.Q0))
	f := a.delta.push(emptyTransition())
	a.delta.patch(x.F, singleTransition(Label{}, f))
	a.delta.patch(y.F, singleTransition(Label{}, f))
	return AutomataRef{Q0: u, F: f}, nil
}

// Finalize records r as the automaton's overall entry and exit.
// Calling it again overwrites the previous boundary.
func (a *ANFA) Finalize(r AutomataRef) error {
	if err := a.checkRange(OpFinalize, r); err != nil {
		return err
	}
	a.q0, a.f = r.Q0, r.F
	return nil
}

// checkOperands validates both operands of a binary composition before
// anything is patched. Two refs sharing an exit would have that exit
// patched twice, so they are rejected like any consumed ref.
func (a *ANFA) checkOperands(op Operation, x, y AutomataRef) error {
	if err := a.checkLive(op, x); err != nil {
		return err
	}
	if err := a.checkLive(op, y); err != nil {
		return err
	}
	if x.F == y.F {
		return &BuildError{Op: op, StateID: y.F, Err: fmt.Errorf("%w: operands share exit state", ErrDanglingState)}
	}
	return nil
}

// checkLive requires r to be in range with an empty exit.
func (a *ANFA) checkLive(op Operation, r AutomataRef) error {
	if err := a.checkRange(op, r); err != nil {
		return err
	}
	if t := a.delta.states[r.F]; !t.IsEmpty() {
		return &BuildError{Op: op, StateID: r.F, Err: ErrDanglingState}
	}
	return nil
}

func (a *ANFA) checkRange(op Operation, r AutomataRef) error {
	if !a.delta.contains(r.Q0) {
		return &BuildError{Op: op, StateID: r.Q0, Err: ErrInvalidState}
	}
	if !a.delta.contains(r.F) {
		return &BuildError{Op: op, StateID: r.F, Err: ErrInvalidState}
	}
	return nil
}

// Delta returns the automaton's state table
func (a *ANFA) Delta() *Delta {
	return &a.delta
}

// State returns the record of state q.
// Returns false if q is outside the table.
func (a *ANFA) State(q QId) (Transition, bool) {
	return a.delta.At(q)
}

// Len returns the total number of states
func (a *ANFA) Len() int {
	return a.delta.Len()
}

// Q0 returns the finalized entry state, or InvalidQId before Finalize
func (a *ANFA) Q0() QId {
	return a.q0
}

// F returns the finalized exit state, or InvalidQId before Finalize
func (a *ANFA) F() QId {
	return a.f
}

// Ref returns the finalized boundary as a ref.
// Returns false before Finalize.
func (a *ANFA) Ref() (AutomataRef, bool) {
	if !a.IsFinalized() {
		return AutomataRef{Q0: InvalidQId, F: InvalidQId}, false
	}
	return AutomataRef{Q0: a.q0, F: a.f}, true
}

// IsFinalized returns true once Finalize has succeeded
func (a *ANFA) IsFinalized() bool {
	return a.q0 != InvalidQId
}

// IsFinal returns true if q is the finalized exit state
func (a *ANFA) IsFinal(q QId) bool {
	return a.IsFinalized() && q == a.f
}

// String returns a human-readable representation of the automaton
func (a *ANFA) String() string {
	return fmt.Sprintf("ANFA{states: %d, q0: %s, f: %s}", a.delta.Len(), qidString(a.q0), qidString(a.f))
}

func qidString(q QId) string {
	if q == InvalidQId {
		return "unset"
	}
	return fmt.Sprintf("%d", q)
}
