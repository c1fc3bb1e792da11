package games

import (
	"sync"

	"github.com/statchomper/statchomper/internal/boxscore"
)

// MockStore is a mock implementation of the GameStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SeedIfEmptyFunc        func(seed []boxscore.GameInput) (int, error)
	GetAllFunc             func() []boxscore.GameRecord
	GetByPlayerFunc        func(name string) []boxscore.GameRecord
	GetDistinctPlayersFunc func() []string
	CreateFunc             func(in boxscore.GameInput) (int64, error)
	UpdateFunc             func(id int64, in boxscore.GameInput) error
	DeleteFunc             func(id int64) error
	DeleteByPlayerFunc     func(name string) (int64, error)

	// Call records
	SeedIfEmptyCalls [][]boxscore.GameInput
	GetByPlayerCalls []string
	CreateCalls      []boxscore.GameInput
	UpdateCalls      []struct {
		ID    int64
		Input boxscore.GameInput
	}
	DeleteCalls         []int64
	DeleteByPlayerCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SeedIfEmpty(seed []boxscore.GameInput) (int, error) {
	m.mu.Lock()
	m.SeedIfEmptyCalls = append(m.SeedIfEmptyCalls, seed)
	m.mu.Unlock()
	if m.SeedIfEmptyFunc != nil {
		return m.SeedIfEmptyFunc(seed)
	}
	return 0, nil
}

func (m *MockStore) GetAll() []boxscore.GameRecord {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil
}

func (m *MockStore) GetByPlayer(name string) []boxscore.GameRecord {
	m.mu.Lock()
	m.GetByPlayerCalls = append(m.GetByPlayerCalls, name)
	m.mu.Unlock()
	if m.GetByPlayerFunc != nil {
		return m.GetByPlayerFunc(name)
	}
	return nil
}

func (m *MockStore) GetDistinctPlayers() []string {
	if m.GetDistinctPlayersFunc != nil {
		return m.GetDistinctPlayersFunc()
	}
	return nil
}

func (m *MockStore) Create(in boxscore.GameInput) (int64, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, in)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(in)
	}
	return 0, nil
}

func (m *MockStore) Update(id int64, in boxscore.GameInput) error {
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		ID    int64
		Input boxscore.GameInput
	}{id, in})
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, in)
	}
	return nil
}

func (m *MockStore) Delete(id int64) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *MockStore) DeleteByPlayer(name string) (int64, error) {
	m.mu.Lock()
	m.DeleteByPlayerCalls = append(m.DeleteByPlayerCalls, name)
	m.mu.Unlock()
	if m.DeleteByPlayerFunc != nil {
		return m.DeleteByPlayerFunc(name)
	}
	return 0, nil
}
