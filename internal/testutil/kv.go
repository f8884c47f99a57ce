package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/thenoetrevino/todo/internal/database"
)

// MemoryKV is an in-memory database.KVStore for service tests.
// Setting GetErr, SetErr or DeleteErr makes the matching operation fail.
type MemoryKV struct {
	mu     sync.Mutex
	data   map[string]string
	closed bool

	GetErr    error
	SetErr    error
	DeleteErr error
	// DeleteErrKey limits DeleteErr to one key when set
	DeleteErrKey string

	// Writes counts successful Set and Delete calls
	Writes int
}

var _ database.KVStore = (*MemoryKV)(nil)

// NewMemoryKV creates an empty store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return "", m.GetErr
	}
	if key == "" {
		return "", database.ErrEmptyKey
	}
	v, ok := m.data[key]
	if !ok {
		return "", database.ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryKV) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	if key == "" {
		return database.ErrEmptyKey
	}
	m.data[key] = value
	m.Writes++
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil && (m.DeleteErrKey == "" || m.DeleteErrKey == key) {
		return m.DeleteErr
	}
	if key == "" {
		return database.ErrEmptyKey
	}
	delete(m.data, key)
	m.Writes++
	return nil
}

func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Put seeds a raw value, bypassing error injection
func (m *MemoryKV) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Raw returns the stored value without error injection
func (m *MemoryKV) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// Closed reports whether Close was called
func (m *MemoryKV) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
