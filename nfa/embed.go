package nfa

import (
	"fmt"

	"github.com/coregx/thompson/internal/conv"
)

// Embed copies the finalized automaton src into a and returns a live
// fragment for the copy. Every state of src is appended with its targets
// shifted past a's existing states; src itself is not modified.
//
// src must be finalized and its exit must still be dangling. Embedding an
// automaton into itself copies the states it had when the call began.
func (a *ANFA) Embed(src *ANFA) (AutomataRef, error) {
	r, ok := src.Ref()
	if !ok {
		return AutomataRef{}, &BuildError{
			Op:      OpEmbed,
			StateID: InvalidQId,
			Err:     fmt.Errorf("%w: source automaton not finalized", ErrInvalidState),
		}
	}
	if t, _ := src.State(r.F); !t.IsEmpty() {
		return AutomataRef{}, &BuildError{Op: OpEmbed, StateID: r.F, Err: ErrDanglingState}
	}

	n := src.Len()
	off := QId(conv.Index(a.delta.Len(), uint32(InvalidQId)))
	for q := range n {
		t, _ := src.delta.At(QId(q)) //nolint:gosec // G115: q < src.Len(), which fits in QId
		a.delta.push(t.shift(off))
	}
	return AutomataRef{Q0: r.Q0 + off, F: r.F + off}, nil
}

// shift moves every target of t by off.
func (t Transition) shift(off QId) Transition {
	switch t.kind {
	case KindSingle:
		t.next += off
	case KindFork:
		t.next += off
		t.alt += off
	}
	return t
}

// Concat returns a new automaton accepting x's language followed by y's.
// x and y are copied, not consumed, and may be the same automaton.
func Concat(x, y *ANFA) (*ANFA, error) {
	return combine(func(a *ANFA, r []AutomataRef) (AutomataRef, error) {
		return a.Concatenate(r[0], r[1])
	}, x, y)
}

// Alternate returns a new automaton accepting either x's or y's language
func Alternate(x, y *ANFA) (*ANFA, error) {
	return combine(func(a *ANFA, r []AutomataRef) (AutomataRef, error) {
		return a.Union(r[0], r[1])
	}, x, y)
}

// Closure returns a new automaton accepting zero or more repetitions of
// x's language
func Closure(x *ANFA) (*ANFA, error) {
	return combine(func(a *ANFA, r []AutomataRef) (AutomataRef, error) {
		return a.Star(r[0])
	}, x)
}

// combine embeds srcs into a fresh automaton, composes the copies and
// finalizes the result.
func combine(compose func(*ANFA, []AutomataRef) (AutomataRef, error), srcs ...*ANFA) (*ANFA, error) {
	size := 3 // Star appends the most new states
	for _, src := range srcs {
		size += src.Len()
	}

	a := newANFA(size)
	refs := make([]AutomataRef, len(srcs))
	for i, src := range srcs {
		r, err := a.Embed(src)
		if err != nil {
			return nil, err
		}
		refs[i] = r
	}

	r, err := compose(a, refs)
	if err != nil {
		return nil, err
	}
	if err := a.Finalize(r); err != nil {
		return nil, err
	}
	return a, nil
}
