// Package memory provides in-memory implementations of storage ports.
// Used in tests and as the degraded ledger when the SQLite history
// database cannot be opened.
package memory

import (
	"context"
	"sync"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// RunStore is an in-memory implementation of ports.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []ports.Run
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make([]ports.Run, 0),
	}
}

// Record stores one scaffold run.
func (s *RunStore) Record(ctx context.Context, run ports.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append(s.runs, run)
	return nil
}

// Recent returns up to limit runs, newest first. Runs are kept in
// insertion order, which matches creation order for a single process.
func (s *RunStore) Recent(ctx context.Context, limit int) ([]ports.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	n := len(s.runs)
	if limit > n {
		limit = n
	}

	out := make([]ports.Run, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.runs[i])
	}
	return out, nil
}

// Ensure interface compliance.
var _ ports.RunStore = (*RunStore)(nil)
