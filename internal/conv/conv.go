// Package conv provides checked integer narrowing for state table indices.
//
// State tables grow by append and hand out their length as the next index.
// Narrowing that length to a 32-bit identifier must never wrap silently;
// these helpers panic on overflow instead.
package conv

// Index converts a table length to a 32-bit index strictly below limit.
// Panics if n < 0 or n >= limit.
//
//go:inline
func Index(n int, limit uint32) uint32 {
	// Compare as uint64 so 32-bit platforms cannot overflow the check.
	if n < 0 || uint64(n) >= uint64(limit) {
		panic("integer overflow: table index out of range")
	}
	return uint32(n)
}

// Len converts a 32-bit index back to an int length or offset.
//
//go:inline
func Len(n uint32) int {
	return int(n)
}
