package nfa

import (
	"errors"
	"fmt"
	"testing"
)

func TestBuildError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BuildError
		wantFull string
	}{
		{
			name:     "with state",
			err:      &BuildError{Op: OpStar, StateID: 7, Err: ErrDanglingState},
			wantFull: "NFA star failed at state 7: final state is not dangling",
		},
		{
			name:     "without state",
			err:      &BuildError{Op: OpUnion, StateID: InvalidQId, Err: ErrInsufficientOperands},
			wantFull: "NFA union failed: insufficient operands",
		},
		{
			name:     "wrapped detail",
			err:      &BuildError{Op: OpConcatenate, StateID: 3, Err: fmt.Errorf("%w: operands share exit state", ErrDanglingState)},
			wantFull: "NFA concatenate failed at state 3: final state is not dangling: operands share exit state",
		},
		{
			name:     "nil inner error",
			err:      &BuildError{Op: OpFinalize, StateID: InvalidQId},
			wantFull: "NFA finalize failed: <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantFull {
				t.Errorf("Error() = %q, want %q", got, tt.wantFull)
			}
		})
	}
}

func TestBuildError_Unwrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"dangling", &BuildError{Op: OpStar, StateID: 1, Err: ErrDanglingState}, ErrDanglingState},
		{"operands", &BuildError{Op: OpUnion, StateID: InvalidQId, Err: ErrInsufficientOperands}, ErrInsufficientOperands},
		{"invariant", &BuildError{Op: OpUnion, StateID: InvalidQId, Err: ErrInternalInvariant}, ErrInternalInvariant},
		{"nested", fmt.Errorf("outer: %w", &BuildError{Op: OpFinalize, StateID: 2, Err: ErrInvalidState}), ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantErr)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "InitialCapacity", Message: "must be positive"}
	want := "nfa: invalid config: InitialCapacity: must be positive"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op    Operation
		want  string
		arity int
	}{
		{OpNothing, "nothing", 0},
		{OpEpsilon, "epsilon", 0},
		{OpLiteral, "literal", 0},
		{OpConcatenate, "concatenate", 2},
		{OpStar, "star", 1},
		{OpUnion, "union", 2},
		{OpFinalize, "finalize", 1},
		{OpEmbed, "embed", 0},
		{Operation(42), "Operation(42)", 0},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.op.Arity(); got != tt.arity {
			t.Errorf("%s.Arity() = %d, want %d", tt.want, got, tt.arity)
		}
	}
}
