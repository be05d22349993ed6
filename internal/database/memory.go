package database

import (
	"context"
	"strings"
)

// MemorySlots is a SlotStore kept in process memory. It backs tests and
// sessions started without a data directory.
type MemorySlots struct {
	values map[string]string
}

// Compile-time verification that *MemorySlots implements SlotStore
var _ SlotStore = (*MemorySlots)(nil)

// NewMemorySlots creates an empty in-memory slot store
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: make(map[string]string)}
}

func (m *MemorySlots) Get(_ context.Context, name string) (string, bool, error) {
	if strings.TrimSpace(name) == "" {
		return "", false, ErrEmptySlotName
	}
	v, ok := m.values[name]
	return v, ok, nil
}

func (m *MemorySlots) Set(_ context.Context, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySlotName
	}
	m.values[name] = value
	return nil
}

func (m *MemorySlots) Delete(_ context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySlotName
	}
	delete(m.values, name)
	return nil
}
