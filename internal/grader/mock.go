package grader

import (
	"context"
	"sync"
)

// MockGrader is a deterministic BatchGrader for testing. It returns
// canned result lists in FIFO order and records every batch it saw.
type MockGrader struct {
	mu      sync.Mutex
	batches [][]Result
	err     error

	// Calls records the item batches submitted, in order.
	Calls [][]Item
}

// NewMockGrader creates a MockGrader with canned result batches.
func NewMockGrader(batches ...[]Result) *MockGrader {
	return &MockGrader{batches: batches}
}

// NewFailingGrader creates a MockGrader that always returns err.
func NewFailingGrader(err error) *MockGrader {
	return &MockGrader{err: err}
}

func (m *MockGrader) GradeBatch(_ context.Context, items []Item) ([]Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, items)

	if m.err != nil {
		return nil, m.err
	}
	if len(m.batches) == 0 {
		return make([]Result, len(items)), nil
	}

	batch := m.batches[0]
	m.batches = m.batches[1:]
	return batch, nil
}

// CallCount returns the number of GradeBatch calls made.
func (m *MockGrader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
