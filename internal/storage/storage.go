// Package storage provides the key/value persistence backing high scores,
// best scores and the player registry.
package storage

import (
	"errors"
	"sync"
)

// ErrUnavailable marks every failure to reach the backing store.
// Callers match it with errors.Is and keep playing with in-memory state.
var ErrUnavailable = errors.New("storage unavailable")

// KV is the minimal store contract. Values are plain text: decimal integers
// for score keys and a JSON document for the player registry.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

// MemoryStore is an in-process KV used for tests and as the fallback when
// the database cannot be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Remove deletes key.
func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

var (
	_ KV = (*MemoryStore)(nil)
	_ KV = (*Store)(nil)
)
