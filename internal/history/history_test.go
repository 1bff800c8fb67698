package history

import "testing"

func TestStack_UndoWalksBack(t *testing.T) {
	s := New()
	if s.State() != StateEmpty || s.CanUndo() {
		t.Fatalf("new stack state = %v, want EMPTY", s.State())
	}

	s.Push("a")
	s.Push("b")
	if s.State() != StateHasHistory || s.Len() != 2 {
		t.Fatalf("state = %v len = %d, want HAS_HISTORY and 2", s.State(), s.Len())
	}

	steps := []struct {
		want   string
		wantOK bool
	}{
		{"b", true},
		{"a", true},
		{"", false},
		{"", false},
	}
	for i, step := range steps {
		got, ok := s.Pop()
		if got != step.want || ok != step.wantOK {
			t.Errorf("Pop() #%d = %q, %v; want %q, %v", i+1, got, ok, step.want, step.wantOK)
		}
	}

	if s.CanUndo() || s.State() != StateEmpty || s.Len() != 0 {
		t.Errorf("after draining: CanUndo=%v State=%v Len=%d", s.CanUndo(), s.State(), s.Len())
	}
}

func TestStack_StateTransitions(t *testing.T) {
	s := New()

	s.Push("x")
	if s.State() != StateHasHistory {
		t.Fatalf("State() = %v after Push", s.State())
	}
	s.Push("y")
	if _, ok := s.Pop(); !ok || s.State() != StateHasHistory {
		t.Fatalf("State() = %v after one Pop of two", s.State())
	}
	if _, ok := s.Pop(); !ok || s.State() != StateEmpty {
		t.Fatalf("State() = %v after draining", s.State())
	}

	s.Push("z")
	if top, ok := s.Peek(); !ok || top != "z" || s.Len() != 1 {
		t.Errorf("Peek() = %q, %v with Len %d", top, ok, s.Len())
	}
}

func TestStack_KeepsEmptyAndDuplicateEntries(t *testing.T) {
	s := New()
	s.Push("")
	s.Push("same")
	s.Push("same")

	for _, want := range []string{"same", "same", ""} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Errorf("Pop() = %q, %v; want %q", got, ok, want)
		}
	}
}

func TestStack_Unbounded(t *testing.T) {
	s := New()
	for i := 0; i < 10000; i++ {
		s.Push("v")
	}
	if s.Len() != 10000 {
		t.Errorf("Len() = %d, want 10000", s.Len())
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateEmpty:      "EMPTY",
		StateHasHistory: "HAS_HISTORY",
		State(9):        "UNKNOWN",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
