package store

import (
	"context"
	"sync"
)

type memorySecureStorage struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemorySecureStorage returns a process-local [SecureStorage]. It does not
// survive restarts and is meant for tests and previews.
func NewMemorySecureStorage() SecureStorage {
	return &memorySecureStorage{items: make(map[string][]byte)}
}

func (m *memorySecureStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, ErrItemNotFound
	}

	return append([]byte(nil), value...), nil
}

func (m *memorySecureStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *memorySecureStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *memorySecureStorage) Apply(_ context.Context, batch *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, op := range batch.Ops() {
		if op.Remove {
			delete(m.items, op.Key)
			continue
		}
		m.items[op.Key] = append([]byte(nil), op.Value...)
	}

	return nil
}
