// Package undo keeps a bounded in-memory history of reversible remote
// mutations, replayed most-recent-first.
package undo

import (
	"sync"

	"tableflip.dev/haru/pkg/dates"
)

// DefaultLimit caps the stack so a long session cannot grow memory without
// bound.
const DefaultLimit = 100

// Kind tags which mutation an entry reverses.
type Kind int

const (
	KindContent Kind = iota
	KindHoliday
)

// Entry is an immutable record of one prior committed value. Content entries
// hold the previous day content verbatim; holiday entries hold the previous
// mark state.
type Entry struct {
	Kind Kind
	Date dates.Key

	// KindContent
	PrevContent string

	// KindHoliday. PrevHoliday false means the day was a normal day.
	PrevHoliday bool
	PrevName    string
}

// Applier issues the reverse mutations. store.Persistence satisfies it.
type Applier interface {
	Write(date dates.Key, text string) <-chan error
	SetHoliday(date dates.Key, name string) <-chan error
}

// Stack is a session-scoped LIFO of undo entries. It is never persisted and
// starts empty on every run.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
}

func NewStack() *Stack {
	return &Stack{limit: DefaultLimit}
}

// Record appends an entry, dropping the oldest once the cap is reached.
func (s *Stack) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Undo pops the most recent entry and issues its reverse write. Popping and
// issuing happen under the lock, so rapid invocations enqueue their writes in
// pop order and never race each other. An empty stack is a no-op.
func (s *Stack) Undo(a Applier) (Entry, <-chan error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return Entry{}, nil, false
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]

	switch e.Kind {
	case KindHoliday:
		if e.PrevHoliday {
			return e, a.SetHoliday(e.Date, e.PrevName), true
		}
		return e, a.SetHoliday(e.Date, ""), true
	default:
		// Previous content was itself a committed value, so it is already
		// clean and writes back verbatim.
		return e, a.Write(e.Date, e.PrevContent), true
	}
}
