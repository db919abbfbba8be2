package store

// Memory is an in-process chain.Storage backed by a plain map, used by
// tests and utxo-bench's quick-start mode.
type Memory struct {
	data map[string][]byte
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements chain.Storage.
func (m *Memory) Get(key []byte) ([]byte, bool, error) {
	v, ok := m.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put implements chain.Storage.
func (m *Memory) Put(key []byte, value []byte) error {
	m.data[string(key)] = append([]byte(nil), value...)
	return nil
}

// Remove implements chain.Storage.
func (m *Memory) Remove(key []byte) error {
	delete(m.data, string(key))
	return nil
}

// Contains implements chain.Storage.
func (m *Memory) Contains(key []byte) (bool, error) {
	_, ok := m.data[string(key)]
	return ok, nil
}
