package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as one JSON file under a base directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the base directory if needed and returns a store
// over it. Directory creation failure is reported once; the store still
// works as a sink that loads nothing.
func NewFileStore(dir string) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[store] failed to create data dir %s: %v", dir, err)
	}
	return &FileStore{dir: dir}
}

// Load reads and unmarshals the file for key. Any failure is treated as
// "no saved state".
func (s *FileStore) Load(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[store] discarding corrupt state for %q: %v", key, err)
		return false
	}
	return true
}

// Save writes v as JSON under key. Failures are logged and swallowed.
func (s *FileStore) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[store] failed to marshal state for %q: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		log.Printf("[store] failed to write state for %q: %v", key, err)
	}
}

// Reset removes the file for key. A missing file is not an error.
func (s *FileStore) Reset(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("[store] failed to reset state for %q: %v", key, err)
	}
}

// path maps a storage key to a filename, replacing separators so keys like
// "resumeBuilder.data" stay flat files.
func (s *FileStore) path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(key) + ".json"
	return filepath.Join(s.dir, name)
}
