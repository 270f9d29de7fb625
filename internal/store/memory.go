package store

import "encoding/json"

// Memory is an in-memory Gateway for tests. It round-trips values through
// JSON so test behavior matches the SQLite store.
type Memory struct {
	values map[string]json.RawMessage

	// SetErr, when non-nil, is returned by every Set call. Lets tests
	// exercise the swallow-and-log persistence failure path.
	SetErr error
}

var _ Gateway = (*Memory)(nil)

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(key string, out any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, err
	}
	return true, nil
}

func (m *Memory) Set(key string, value any) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

// SetRaw stores a raw JSON value directly, letting tests plant malformed
// or unexpected payloads under a key.
func (m *Memory) SetRaw(key string, raw string) {
	m.values[key] = json.RawMessage(raw)
}
