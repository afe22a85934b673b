package localstore

import "sync"

// Memory implementación en memoria del Store, para tests y para correr sin
// persistencia.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory crea un store vacío en memoria.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(bucket string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[bucket]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (m *Memory) Set(bucket string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[bucket] = cp
	return nil
}

func (m *Memory) Remove(bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, bucket)
	return nil
}
