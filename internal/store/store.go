// Package store persists application state as keyed JSON blobs on disk.
// Reads of missing or corrupt blobs silently yield the caller's default;
// writes go to a temporary file first and are renamed over the target so a
// crash mid-write never leaves a half-written blob observable.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Blob is the durable key/value collaborator the stores are built on.
// Implementations must provide atomic replace semantics for Write.
type Blob interface {
	// Read unmarshals the blob at key into v. Returns false when the key
	// is missing or unreadable; v is left untouched so the caller's
	// default survives.
	Read(key string, v any) bool

	// Write marshals v and atomically replaces the blob at key.
	Write(key string, v any) error
}

// FileStore keeps one JSON file per key under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func (s *FileStore) Read(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *FileStore) Write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

// sanitizeKey keeps keys filesystem-safe. User names feed into keys, so
// anything outside a conservative charset becomes an underscore.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
