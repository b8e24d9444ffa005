package nfa

// Machine drives an ANFA through an operand stack.
//
// Primitives push a fragment; Concatenate and Union pop two, Star pops one,
// and each pushes its result. Finalize pops the last fragment and records
// it as the automaton's boundary. This is the postfix form a syntax-tree
// walk produces naturally. Operands are checked before anything is popped,
// so a failed operation leaves both the stack and the table unchanged.
type Machine struct {
	anfa *ANFA
	refs []AutomataRef
}

// NewMachine creates a stack machine building into anfa
func NewMachine(anfa *ANFA) *Machine {
	return &Machine{anfa: anfa}
}

// ANFA returns the automaton being built
func (m *Machine) ANFA() *ANFA {
	return m.anfa
}

// Depth returns the number of live fragments on the stack
func (m *Machine) Depth() int {
	return len(m.refs)
}

// Top returns the most recently pushed fragment.
// Returns false if the stack is empty.
func (m *Machine) Top() (AutomataRef, bool) {
	if len(m.refs) == 0 {
		return AutomataRef{}, false
	}
	return m.refs[len(m.refs)-1], true
}

// Nothing pushes a fragment accepting no string
func (m *Machine) Nothing() {
	m.refs = append(m.refs, m.anfa.Nothing())
}

// Epsilon pushes a fragment accepting only the empty string
func (m *Machine) Epsilon() {
	m.refs = append(m.refs, m.anfa.Epsilon())
}

// Literal pushes a fragment accepting exactly c
func (m *Machine) Literal(c rune) {
	m.refs = append(m.refs, m.anfa.Literal(c))
}

// Concatenate pops b then a and pushes a·b
func (m *Machine) Concatenate() error {
	return m.binary(OpConcatenate, m.anfa.Concatenate)
}

// Union pops b then a and pushes a|b
func (m *Machine) Union() error {
	return m.binary(OpUnion, m.anfa.Union)
}

// Star pops a and pushes a*
func (m *Machine) Star() error {
	if err := m.need(OpStar, 1); err != nil {
		return err
	}
	a, err := m.peek(OpStar, 0)
	if err != nil {
		return err
	}
	r, err := m.anfa.Star(a)
	if err != nil {
		return err
	}
	m.refs[len(m.refs)-1] = r
	return nil
}

// Finalize pops the only remaining fragment and makes it the automaton's
// boundary. Exactly one fragment must be left on the stack.
func (m *Machine) Finalize() error {
	if err := m.need(OpFinalize, 1); err != nil {
		return err
	}
	if len(m.refs) > 1 {
		return &BuildError{Op: OpFinalize, StateID: InvalidQId, Err: ErrUnconsumedOperands}
	}
	r, err := m.peek(OpFinalize, 0)
	if err != nil {
		return err
	}
	if err := m.anfa.Finalize(r); err != nil {
		return err
	}
	m.refs = m.refs[:0]
	return nil
}

func (m *Machine) binary(op Operation, compose func(a, b AutomataRef) (AutomataRef, error)) error {
	if err := m.need(op, 2); err != nil {
		return err
	}
	b, err := m.peek(op, 0)
	if err != nil {
		return err
	}
	a, err := m.peek(op, 1)
	if err != nil {
		return err
	}
	r, err := compose(a, b)
	if err != nil {
		return err
	}
	m.refs = append(m.refs[:len(m.refs)-2], r)
	return nil
}

func (m *Machine) need(op Operation, n int) error {
	if len(m.refs) < n {
		return &BuildError{Op: op, StateID: InvalidQId, Err: ErrInsufficientOperands}
	}
	return nil
}

// peek returns the ref depth positions below the top.
func (m *Machine) peek(op Operation, depth int) (AutomataRef, error) {
	i := len(m.refs) - 1 - depth
	if i < 0 || i >= len(m.refs) {
		// need() was satisfied, so this cannot happen
		return AutomataRef{}, &BuildError{Op: op, StateID: InvalidQId, Err: ErrInternalInvariant}
	}
	return m.refs[i], nil
}
