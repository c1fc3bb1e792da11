package metrics

import "sync"

// Mock is a mock implementation of the MetricsStore interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		counts: make(map[string]int),
	}
}

func (m *Mock) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
}

func (m *Mock) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out, nil
}

// Count returns how many times key was incremented.
func (m *Mock) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}
