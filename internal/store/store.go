// Package store persists user-chosen pane widths across sessions.
//
// Widths are stored in device pixels under composite keys, so a preference
// committed at one zoom level survives zoom changes. The layout engine only
// ever reads restored values; writes happen on explicit resize commits.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/xq773939719/gitbutler/internal/errors"
)

// Store is the read/write contract for remembered pane widths.
// Get reports false when no width has ever been committed for the key.
type Store interface {
	Get(key Key) (float64, bool)
	Set(key Key, px float64) error
}

// MemStore is an in-memory Store for tests and ephemeral layouts.
type MemStore struct {
	mu     sync.RWMutex
	widths map[string]float64
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{widths: make(map[string]float64)}
}

// Get returns the remembered width for key.
func (s *MemStore) Get(key Key) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	px, ok := s.widths[key.String()]
	return px, ok
}

// Set remembers a width for key.
func (s *MemStore) Set(key Key, px float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.widths[key.String()] = px
	return nil
}

// FileStore persists widths as a flat JSON object in a single file, written
// through on every Set so a crash never loses a committed preference.
type FileStore struct {
	mu       sync.RWMutex
	widths   map[string]float64
	filePath string
}

// OpenFileStore loads the store at path, creating an empty one if the file
// does not exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		widths:   make(map[string]float64),
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.StoreLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, &s.widths); err != nil {
		return nil, errors.StoreLoadFailed(path, err)
	}
	if s.widths == nil {
		s.widths = make(map[string]float64)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.filePath
}

// Get returns the remembered width for key.
func (s *FileStore) Get(key Key) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	px, ok := s.widths[key.String()]
	return px, ok
}

// Set remembers a width for key and writes the store file.
func (s *FileStore) Set(key Key, px float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.widths[key.String()] = px
	return s.save()
}

// Reload replaces the in-memory widths with the current file contents.
// Called by the watcher when another window writes the store.
func (s *FileStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		s.widths = make(map[string]float64)
		return nil
	}
	if err != nil {
		return errors.StoreLoadFailed(s.filePath, err)
	}

	widths := make(map[string]float64)
	if err := json.Unmarshal(data, &widths); err != nil {
		return errors.StoreLoadFailed(s.filePath, err)
	}
	s.widths = widths
	return nil
}

// save writes the widths map to disk. Caller holds the lock.
func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return errors.StoreSaveFailed(s.filePath, err)
	}

	data, err := json.MarshalIndent(s.widths, "", "  ")
	if err != nil {
		return errors.StoreSaveFailed(s.filePath, err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return errors.StoreSaveFailed(s.filePath, err)
	}
	return nil
}
