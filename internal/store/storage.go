package store

import (
	"sync"

	"securechat/internal/domain"
)

// FileStorage keeps a flat string map in a single JSON file. Every mutation
// rewrites the file atomically before the call returns, so the on-disk copy
// never lags the in-process one.
type FileStorage struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// OpenFileStorage loads (or lazily creates) the storage file at path.
func OpenFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path, data: make(map[string]string)}
	if err := readJSON(path, &s.data); err != nil {
		return nil, err
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return s, nil
}

// Get returns the value for key, reporting absence.
func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set persists value under key.
func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, had := s.data[key]
	s.data[key] = value
	if err := writeJSON(s.path, s.data, 0o600); err != nil {
		if had {
			s.data[key] = old
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// Delete removes key entirely. Deleting an absent key is a no-op.
func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := writeJSON(s.path, s.data, 0o600); err != nil {
		s.data[key] = old
		return err
	}
	return nil
}

// MemoryStorage is a map-backed Storage for tests and session-scoped scratch
// state.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

// Get returns the value for key, reporting absence.
func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key.
func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes key entirely.
func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

var (
	_ domain.Storage = (*FileStorage)(nil)
	_ domain.Storage = (*MemoryStorage)(nil)
)
