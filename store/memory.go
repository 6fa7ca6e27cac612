package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process [Store]. The zero value is not usable; call
// [NewMemory].
type Memory struct {
	mu       sync.Mutex
	counters map[uuid.UUID]Counter
	newID    func() uuid.UUID
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		counters: make(map[uuid.UUID]Counter),
		newID:    uuid.New,
	}
}

// Create inserts a new counter at value 0. A generated id that already
// exists is discarded and regenerated.
func (m *Memory) Create(_ context.Context) (Counter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	for {
		if _, exists := m.counters[id]; !exists {
			break
		}
		id = m.newID()
	}

	c := Counter{ID: id}
	m.counters[id] = c
	return c, nil
}

// Get returns a copy of the counter and whether it exists.
func (m *Memory) Get(_ context.Context, id uuid.UUID) (Counter, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[id]
	return c, ok, nil
}

// List returns copies of all counters in map iteration order.
func (m *Memory) List(_ context.Context) ([]Counter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Counter, 0, len(m.counters))
	for _, c := range m.counters {
		out = append(out, c)
	}
	return out, nil
}

// Increment adds one to the counter, saturating at [MaxValue]. A missing
// counter is created at 1.
func (m *Memory) Increment(_ context.Context, id uuid.UUID) (Counter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[id]
	if !ok {
		c = Counter{ID: id}
	}
	c.Value = incremented(c.Value)
	m.counters[id] = c
	return c, nil
}

// Decrement subtracts one, stopping at zero. A missing counter is created
// at 0.
func (m *Memory) Decrement(_ context.Context, id uuid.UUID) (Counter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[id]
	if !ok {
		c = Counter{ID: id}
	}
	c.Value = decremented(c.Value)
	m.counters[id] = c
	return c, nil
}

// Len returns the number of stored counters.
func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counters), nil
}
