package store

import (
	"context"
	"sync"
)

// Memory is a map-backed Store. It backs tests and serves as the degraded
// fallback when the database file cannot be opened at startup (records then
// live only for the process lifetime, but the application keeps running).
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Load returns a copy of the payload for slot, or (nil, nil) when unset.
func (m *Memory) Load(_ context.Context, slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Save stores a copy of payload under slot.
func (m *Memory) Save(_ context.Context, slot string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.slots[slot] = stored
	return nil
}
