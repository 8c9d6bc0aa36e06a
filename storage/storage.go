// Package storage implements the persistence bridge: a small string
// key-value store mirrored to the device, plus tolerant typed readers.
//
// The store is a cache, not a source of truth: apps read each key
// once at startup and write the full value back on every change
// (last-write-wins, no merge). Missing or malformed values always
// fall back to defaults; a bad store can never crash an app.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
)

// Store is the device key-value store the bridge mirrors to.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any prior value.
	Set(key, value string)
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

// Get returns the value for key.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

// Set stores value under key.
func (s *MemStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

// FileStore persists the key-value map as a single JSON object file.
// Every Set rewrites the whole file; the last write wins.
type FileStore struct {
	mu   sync.Mutex
	path string
	m    map[string]string
}

// OpenFile loads (or initializes) a file-backed store at path.
// A missing file yields an empty store; a malformed file is logged
// and treated as empty rather than failing the app.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, m: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.m); err != nil {
		log.Printf("storage: %s is malformed, starting fresh: %v", path, err)
		s.m = make(map[string]string)
	}
	return s, nil
}

// Get returns the value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

// Set stores value under key and rewrites the backing file.
// Write failures are logged, not surfaced; the in-memory value is
// still the truth for the rest of the session.
func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	data, err := json.Marshal(s.m)
	if err != nil {
		log.Printf("storage: marshal %s: %v", s.path, err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("storage: write %s: %v", s.path, err)
	}
}

// --- Typed readers and writers ---

// Bool reads a "true"/"false" flag, falling back to def when the key
// is absent or holds anything else.
func Bool(st Store, key string, def bool) bool {
	v, ok := st.Get(key)
	if !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	log.Printf("storage: %s holds %q, using default %v", key, v, def)
	return def
}

// SetBool writes a flag as "true"/"false".
func SetBool(st Store, key string, v bool) {
	st.Set(key, strconv.FormatBool(v))
}

// Float reads a stringified float, falling back to def on absent or
// unparsable values.
func Float(st Store, key string, def float64) float64 {
	v, ok := st.Get(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("storage: %s holds %q, using default %g", key, v, def)
		return def
	}
	return f
}

// SetFloat writes a float as its shortest decimal form.
func SetFloat(st Store, key string, v float64) {
	st.Set(key, strconv.FormatFloat(v, 'g', -1, 64))
}

// IDList reads a JSON-array-encoded ID list. Absent or malformed
// values yield nil (an empty list), never an error.
func IDList(st Store, key string) []string {
	v, ok := st.Get(key)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(v), &ids); err != nil {
		log.Printf("storage: %s holds malformed JSON, using empty list: %v", key, err)
		return nil
	}
	return ids
}

// SetIDList writes an ID list as a JSON array.
func SetIDList(st Store, key string, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	data, _ := json.Marshal(ids)
	st.Set(key, string(data))
}
