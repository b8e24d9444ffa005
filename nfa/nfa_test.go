package nfa

import (
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "Empty"},
		{KindSingle, "Single"},
		{KindFork, "Fork"},
		{Kind(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestTransition_Accessors(t *testing.T) {
	tests := []struct {
		name      string
		tr        Transition
		wantKind  Kind
		wantEdges int
		wantStr   string
	}{
		{"empty", emptyTransition(), KindEmpty, 0, "Empty"},
		{"labelled", singleTransition(Sym('a'), 4), KindSingle, 1, "Single 'a' -> 4"},
		{"epsilon", singleTransition(Label{}, 2), KindSingle, 1, "Single ε -> 2"},
		{"fork", forkTransition(1, 5), KindFork, 2, "Fork -> [1, 5]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %s, want %s", got, tt.wantKind)
			}
			if got := tt.tr.Edges(); got != tt.wantEdges {
				t.Errorf("Edges() = %d, want %d", got, tt.wantEdges)
			}
			if got := tt.tr.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			if tt.tr.IsEmpty() != (tt.wantKind == KindEmpty) {
				t.Errorf("IsEmpty() = %v for %s", tt.tr.IsEmpty(), tt.wantKind)
			}
		})
	}
}

func TestTransition_WrongKindAccessors(t *testing.T) {
	single := singleTransition(Sym('x'), 3)
	if l, r := single.Fork(); l != InvalidQId || r != InvalidQId {
		t.Errorf("Fork() on single = (%d, %d), want invalid", l, r)
	}

	fork := forkTransition(1, 2)
	label, next := fork.Single()
	if !label.IsEpsilon() || next != InvalidQId {
		t.Errorf("Single() on fork = (%s, %d), want (ε, invalid)", label, next)
	}

	empty := emptyTransition()
	if _, next := empty.Single(); next != InvalidQId {
		t.Errorf("Single() on empty = %d, want invalid", next)
	}
}

func TestLabel(t *testing.T) {
	var eps Label
	if !eps.IsEpsilon() {
		t.Error("zero label should be epsilon")
	}
	if eps.Matches(0) {
		t.Error("epsilon should not match the zero rune")
	}
	if _, ok := eps.Symbol(); ok {
		t.Error("epsilon has no symbol")
	}

	a := Sym('a')
	if a.IsEpsilon() {
		t.Error("symbol label is not epsilon")
	}
	if !a.Matches('a') || a.Matches('b') {
		t.Error("Matches should compare symbols")
	}
	if got := a.String(); got != "'a'" {
		t.Errorf("String() = %q", got)
	}
	if got := eps.String(); got != "ε" {
		t.Errorf("String() = %q", got)
	}
}

func TestAutomataRef_String(t *testing.T) {
	r := AutomataRef{Q0: 3, F: 9}
	if got := r.String(); got != "Ref(3 -> 9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDelta_Iter(t *testing.T) {
	a := New()
	a.Literal('a')
	a.Epsilon()

	it := a.Delta().Iter()
	var kinds []Kind
	for it.HasNext() {
		id, tr, ok := it.Next()
		if !ok {
			t.Fatal("Next() returned false while HasNext() was true")
		}
		if int(id) != len(kinds) {
			t.Errorf("state %d yielded at position %d", id, len(kinds))
		}
		kinds = append(kinds, tr.Kind())
	}
	if _, _, ok := it.Next(); ok {
		t.Error("Next() after the end should return false")
	}

	want := []Kind{KindSingle, KindEmpty, KindEmpty}
	if len(kinds) != len(want) {
		t.Fatalf("got %d states, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("state %d kind = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestDelta_At(t *testing.T) {
	a := New()
	a.Epsilon()
	if _, ok := a.Delta().At(0); !ok {
		t.Error("At(0) should exist")
	}
	if _, ok := a.Delta().At(1); ok {
		t.Error("At(1) should be out of range")
	}
	if _, ok := a.Delta().At(InvalidQId); ok {
		t.Error("At(InvalidQId) should be out of range")
	}
}
