package nfa

import (
	"github.com/coregx/thompson/internal/conv"
)

// Delta is the append-only state table of an automaton, indexed by QId.
// Records are appended by primitive builders and patched in place only
// while they are empty; nothing is ever removed or reindexed.
type Delta struct {
	states []Transition
}

func newDelta(capacity int) Delta {
	return Delta{states: make([]Transition, 0, capacity)}
}

// Len returns the number of states in the table
func (d *Delta) Len() int {
	return len(d.states)
}

// At returns the record of state q.
// Returns false if q is outside the table.
func (d *Delta) At(q QId) (Transition, bool) {
	if !d.contains(q) {
		return Transition{}, false
	}
	return d.states[q], true
}

func (d *Delta) contains(q QId) bool {
	return q != InvalidQId && conv.Len(uint32(q)) < len(d.states)
}

// push appends a record and returns its ID.
// Panics once the table would reach InvalidQId.
func (d *Delta) push(t Transition) QId {
	id := QId(conv.Index(len(d.states), uint32(InvalidQId)))
	d.states = append(d.states, t)
	return id
}

// patch overwrites the record of q, which must be in range.
func (d *Delta) patch(q QId, t Transition) {
	d.states[q] = t
}

// Iter returns an iterator over all states in the table
func (d *Delta) Iter() *DeltaIter {
	return &DeltaIter{delta: d}
}

// DeltaIter is an iterator over the records of a state table
type DeltaIter struct {
	delta *Delta
	pos   int
}

// Next returns the next state and its record.
// Returns false when iteration is complete.
func (it *DeltaIter) Next() (QId, Transition, bool) {
	if it.pos >= len(it.delta.states) {
		return InvalidQId, Transition{}, false
	}
	id := QId(it.pos) //nolint:gosec // G115: push bounds the table below InvalidQId
	t := it.delta.states[it.pos]
	it.pos++
	return id, t, true
}

// HasNext returns true if there are more states to iterate
func (it *DeltaIter) HasNext() bool {
	return it.pos < len(it.delta.states)
}
