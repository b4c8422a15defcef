package undo

import (
	"context"
	"time"
)

// Pair maps one origin path to the final path it was renamed to.
type Pair struct {
	Origin string `json:"origin"`
	Final  string `json:"final"`
}

// Entry is the reverse mapping recorded after one successfully committed batch.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Pairs     []Pair    `json:"pairs"`
}

// Stack stores committed batches in last-in-first-out order. The in-memory
// implementation below serves a single process; the store package provides a
// SQLite-backed one so undo works across CLI invocations.
type Stack interface {
	Push(ctx context.Context, entry Entry) error
	// Pop removes and returns the most recent entry. The boolean is false
	// when the stack is empty.
	Pop(ctx context.Context) (Entry, bool, error)
	Depth(ctx context.Context) (int, error)
}

// MemoryStack is the process-local Stack.
type MemoryStack struct {
	entries []Entry
}

// NewMemoryStack returns an empty in-memory stack.
func NewMemoryStack() *MemoryStack {
	return &MemoryStack{}
}

func (s *MemoryStack) Push(_ context.Context, entry Entry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryStack) Pop(_ context.Context) (Entry, bool, error) {
	if len(s.entries) == 0 {
		return Entry{}, false, nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true, nil
}

func (s *MemoryStack) Depth(_ context.Context) (int, error) {
	return len(s.entries), nil
}
