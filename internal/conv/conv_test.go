package conv

import (
	"testing"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		limit     uint32
		want      uint32
		wantPanic bool
	}{
		{name: "zero", n: 0, limit: 10, want: 0},
		{name: "below limit", n: 9, limit: 10, want: 9},
		{name: "at limit", n: 10, limit: 10, wantPanic: true},
		{name: "negative", n: -1, limit: 10, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Errorf("Index(%d, %d) should panic", tt.n, tt.limit)
				}
				if !tt.wantPanic && r != nil {
					t.Errorf("Index(%d, %d) panicked: %v", tt.n, tt.limit, r)
				}
			}()
			if got := Index(tt.n, tt.limit); got != tt.want {
				t.Errorf("Index(%d, %d) = %d, want %d", tt.n, tt.limit, got, tt.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	if got := Len(42); got != 42 {
		t.Errorf("Len(42) = %d", got)
	}
}
