package storage

// Package storage contains a simple hand-written in-memory test double
// for ports.SessionStorage. It is lightweight and suitable for unit
// tests without codegen; error injection covers the storage failure
// paths.

import (
	"sync"

	"github.com/taskdeck/taskdeck/internal/ports"
)

// Compile-time conformance to the port.
var _ ports.SessionStorage = (*MemoryStorage)(nil)

// MemoryStorage keeps the two session keys in memory.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
	user  []byte

	// Injected failures; nil means the call succeeds.
	LoadErr  error
	StoreErr error
	ClearErr error

	// Call counters for asserting write behavior.
	StoreCalls int
	ClearCalls int
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Seed pre-populates both keys, bypassing Store and its counter.
func (m *MemoryStorage) Seed(token string, user []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user
}

func (m *MemoryStorage) Load() (string, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return "", nil, m.LoadErr
	}
	if m.token == "" || len(m.user) == 0 {
		return "", nil, nil
	}
	return m.token, m.user, nil
}

func (m *MemoryStorage) Store(token string, user []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreCalls++
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.token = token
	m.user = user
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.token = ""
	m.user = nil
	return nil
}

// Contents returns the stored keys for assertions.
func (m *MemoryStorage) Contents() (string, []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.user
}
