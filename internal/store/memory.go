package store

import (
	"context"
	"sync"
)

// MemoryEntryRepo is an in-process EntryRepo. Setting Err makes every call
// fail with it, which lets callers exercise their storage-failure paths.
type MemoryEntryRepo struct {
	mu      sync.Mutex
	entries map[string][]byte
	Err     error
}

// NewMemoryEntryRepo creates an empty in-memory EntryRepo.
func NewMemoryEntryRepo() *MemoryEntryRepo {
	return &MemoryEntryRepo{entries: make(map[string][]byte)}
}

func (m *MemoryEntryRepo) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	v, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryEntryRepo) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.entries[key] = append([]byte(nil), value...)
	return nil
}
