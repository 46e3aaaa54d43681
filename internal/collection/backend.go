package collection

import (
	"slices"
	"sync"
)

// Backend persists raw collection payloads by name. A payload is the JSON
// encoding of the whole collection.
type Backend interface {
	// Read returns the stored payload, or nil with no error when the collection is absent.
	Read(name string) ([]byte, error)
	// Write replaces the stored payload. It must be all-or-nothing.
	Write(name string, payload []byte) error
	// Remove deletes the collection. Removing an absent collection is not an error.
	Remove(name string) error
	// Names lists stored collections in sorted order.
	Names() ([]string, error)
}

// Memory is an in-process Backend, used by tests and as a fallback when no
// durable backend can be opened.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-process backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[name]
	if !ok {
		return nil, nil
	}
	return slices.Clone(b), nil
}

func (m *Memory) Write(name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = slices.Clone(payload)
	return nil
}

func (m *Memory) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, name)
	return nil
}

func (m *Memory) Names() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
