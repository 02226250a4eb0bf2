package store

import (
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store used by tests and as the server default
// when no data directory is configured.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

// Load unmarshals the stored blob into v, reporting false when absent or
// unparsable.
func (s *MemStore) Load(key string, v any) bool {
	s.mu.RLock()
	data, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Save stores v as JSON under key.
func (s *MemStore) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()
}

// Reset removes the blob under key.
func (s *MemStore) Reset(key string) {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
}
