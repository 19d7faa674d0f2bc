package store

import (
	"context"
	"sync"
)

// Memory keeps saved designs in process memory.
type Memory struct {
	mu    sync.RWMutex
	items []string
}

func NewMemory(items ...string) *Memory {
	return &Memory{items: append([]string(nil), items...)}
}

func (m *Memory) List(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.items...), nil
}

func (m *Memory) Append(_ context.Context, serialized string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, serialized)
	return nil
}

func (m *Memory) Remove(_ context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.items) {
		return outOfRange(index, len(m.items))
	}
	m.items = append(m.items[:index], m.items[index+1:]...)
	return nil
}
