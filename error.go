package thompson

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported indicates a syntax construct that has no algebraic
	// construction: anchors, word boundaries, any-char, case folding and
	// character classes larger than Config.MaxClassSize
	ErrUnsupported = errors.New("unsupported regex construct")

	// ErrTooComplex indicates the syntax tree is nested deeper than
	// Config.MaxRecursionDepth
	ErrTooComplex = errors.New("pattern too complex")
)

// CompileError represents an error during pattern translation or
// construction
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
