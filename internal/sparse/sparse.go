// Package sparse provides a sparse set of state indices.
//
// The set supports O(1) insert, membership and clear while keeping a dense
// list in insertion order, which is what an epsilon-closure walk needs: the
// dense list doubles as the work list of the current generation.
package sparse

// Set is a set of uint32 values drawn from [0, capacity).
type Set struct {
	sparse []uint32 // value -> position in dense
	dense  []uint32
}

// New creates an empty set for values below capacity.
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value and reports whether it was newly added.
// Values outside the capacity are rejected and reported as not added.
func (s *Set) Insert(value uint32) bool {
	if int(value) >= len(s.sparse) || s.Contains(value) {
		return false
	}
	//nolint:gosec // G115: dense never exceeds len(sparse), which fits uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	i := s.sparse[value]
	return int(i) < len(s.dense) && s.dense[i] == value
}

// Clear empties the set without touching the sparse array.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Capacity returns the exclusive upper bound on storable values.
func (s *Set) Capacity() int {
	return len(s.sparse)
}

// Values returns the values in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
