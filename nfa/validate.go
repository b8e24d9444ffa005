package nfa

import (
	"fmt"
)

// Validate checks that the automaton is well-formed:
//   - every single edge targets a state in the table
//   - both fork targets are in the table
//   - if finalized, q0 and f are in range and f has no outgoing edge
//
// Construction through the ANFA methods always yields a valid table;
// Validate exists for consumers that receive an automaton from elsewhere.
func (a *ANFA) Validate() error {
	it := a.delta.Iter()
	for it.HasNext() {
		id, t, _ := it.Next()
		switch t.Kind() {
		case KindEmpty:
		case KindSingle:
			if _, next := t.Single(); !a.delta.contains(next) {
				return &BuildError{
					Op:      OpFinalize,
					StateID: id,
					Err:     fmt.Errorf("%w: edge to %d", ErrInvalidState, next),
				}
			}
		case KindFork:
			left, right := t.Fork()
			if !a.delta.contains(left) || !a.delta.contains(right) {
				return &BuildError{
					Op:      OpFinalize,
					StateID: id,
					Err:     fmt.Errorf("%w: fork to [%d, %d]", ErrInvalidState, left, right),
				}
			}
		default:
			return &BuildError{
				Op:      OpFinalize,
				StateID: id,
				Err:     fmt.Errorf("%w: unknown kind %s", ErrInternalInvariant, t.Kind()),
			}
		}
	}

	if !a.IsFinalized() {
		return nil
	}
	if err := a.checkRange(OpFinalize, AutomataRef{Q0: a.q0, F: a.f}); err != nil {
		return err
	}
	if t := a.delta.states[a.f]; !t.IsEmpty() {
		return &BuildError{Op: OpFinalize, StateID: a.f, Err: ErrDanglingState}
	}
	return nil
}
