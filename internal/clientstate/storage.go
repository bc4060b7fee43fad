package clientstate

import (
	"encoding/json"
	"os"
	"sync"
)

// Storage is the persistence surface behind the state container: a flat
// string key/value store.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStorage keeps values in a map. Used in tests and as a harmless
// default.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStorage persists the key/value map as a single JSON file, rewritten on
// every mutation.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileStorage(path string) *FileStorage {
	s := &FileStorage{path: path, values: map[string]string{}}
	if data, err := os.ReadFile(path); err == nil {
		// A corrupt file is treated as empty state.
		_ = json.Unmarshal(data, &s.values)
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

func (s *FileStorage) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
