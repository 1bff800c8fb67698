// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     history
// Description: Linear undo stack of previous buffer contents
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package history keeps the buffer states that existed immediately before
// each applied transform. The stack only grows through Push and only
// shrinks through Pop; there is no redo and no upper bound.
//
// A Stack is not safe for concurrent use. Hosts that share one across
// goroutines must serialize access, as engine.Engine does.
package history

// State is the observable state of a stack
type State int

const (
	// StateEmpty means there is nothing to undo
	StateEmpty State = iota
	// StateHasHistory means at least one entry can be restored
	StateHasHistory
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StateHasHistory:
		return "HAS_HISTORY"
	default:
		return "UNKNOWN"
	}
}

// Stack is a LIFO stack of prior buffer contents
type Stack struct {
	entries []string
}

// New creates an empty stack
func New() *Stack {
	return &Stack{}
}

// Push records the buffer as it is before a mutation.
func (s *Stack) Push(value string) {
	s.entries = append(s.entries, value)
}

// Pop removes and returns the most recent entry. ok is false when the
// stack is empty, in which case nothing changes.
func (s *Stack) Pop() (value string, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return "", false
	}
	value = s.entries[n-1]
	s.entries[n-1] = ""
	s.entries = s.entries[:n-1]
	return value, true
}

// Peek returns the most recent entry without removing it
func (s *Stack) Peek() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1], true
}

// CanUndo reports whether Pop would return an entry
func (s *Stack) CanUndo() bool {
	return len(s.entries) > 0
}

// Len returns the number of recorded entries
func (s *Stack) Len() int {
	return len(s.entries)
}

// State returns StateHasHistory when there is something to undo
func (s *Stack) State() State {
	if s.CanUndo() {
		return StateHasHistory
	}
	return StateEmpty
}
