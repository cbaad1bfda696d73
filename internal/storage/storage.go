package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrKeyNotFound is returned by Get for an absent key
var ErrKeyNotFound = errors.New("key not found")

// KeyValue is durable storage for small raw records addressed by a well-known key
type KeyValue interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStore keeps every key in one JSON document on disk
type FileStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewFileStore creates a store backed by dataDir/filename
func NewFileStore(dataDir, filename string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir %s: %w", dataDir, err)
	}
	return &FileStore{filePath: filepath.Join(dataDir, filename)}, nil
}

// Get returns the raw value stored under key
func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("storage: get %s: %w", key, ErrKeyNotFound)
	}
	return []byte(v), nil
}

// Set stores value under key, replacing any previous value
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		// an unreadable document is replaced rather than blocking new writes
		doc = make(map[string]string)
	}
	doc[key] = string(value)
	return s.save(doc)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		doc = make(map[string]string)
	}
	delete(doc, key)
	return s.save(doc)
}

func (s *FileStore) load() (map[string]string, error) {
	doc := make(map[string]string)

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("storage: open %s: %w", s.filePath, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", s.filePath, err)
	}
	return doc, nil
}

// save writes to a temp file first, then renames over the original
func (s *FileStore) save(doc map[string]string) error {
	tempFile := s.filePath + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", tempFile, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		file.Close()
		os.Remove(tempFile)
		return fmt.Errorf("storage: encode: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, s.filePath)
}

// MemoryStore is a KeyValue that lives only as long as the process
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("storage: get %s: %w", key, ErrKeyNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
