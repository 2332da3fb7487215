package storage

import "sync"

// Memory keeps items in process memory. A positive quota limits the size of a
// single item, key included.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
	quota int
}

func NewMemory(quota int) *Memory {
	return &Memory{
		items: make(map[string]string),
		quota: quota,
	}
}

func (m *Memory) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	return value, ok, nil
}

func (m *Memory) SetItem(key, value string) error {
	if err := checkQuota(m.quota, key, value); err != nil {
		return err
	}

	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error {
	return nil
}
