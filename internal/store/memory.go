// internal/store/memory.go
//
// In-memory implementation of the KV interface.
// This is a lightweight persistence layer used for throwaway sessions,
// primarily in development/testing, or when durability is not required.
//
// Characteristics:
//   - Stores raw record bytes keyed by record name in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Values are copied on the way in and out so callers cannot alias stored bytes.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based KV implementation.
type memory struct {
	mu      sync.RWMutex      // guards records map
	records map[string][]byte // keyed by record name
}

// NewMemory constructs a new in-memory KV.
func NewMemory() KV {
	return &memory{records: make(map[string][]byte)}
}

// Get looks up a record by key.
// Returns a copy of the stored bytes or ErrNotFound if missing.
func (m *memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.records[key]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, ErrNotFound
}

// Put adds or replaces the record.
func (m *memory) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes the record if present.
func (m *memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}
