package store

import "sync"

// MockCache is an in-process ResultCache for tests and for running without
// Redis.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMockCache creates an empty in-process cache.
func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string]string)}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
