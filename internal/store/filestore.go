package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per (namespace, key) under a single
// directory. Writes go through a temporary sibling file followed by an atomic
// rename, so a crash mid-write leaves the previous document intact. The path
// mapping is pure, so any process pointed at the same directory agrees on
// entity identity.
type FileStore struct {
	dir string
}

// NewFileStore creates the cache directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Exists reports whether a document has been committed for the key.
func (s *FileStore) Exists(_ context.Context, ns Namespace, key string) (bool, error) {
	_, err := os.Stat(s.keyPath(ns, key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s/%s: %w", ns, key, err)
}

// Get returns the committed document, or nil if none exists.
func (s *FileStore) Get(_ context.Context, ns Namespace, key string) (json.RawMessage, error) {
	data, err := os.ReadFile(s.keyPath(ns, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s/%s: %w", ns, key, err)
	}
	return data, nil
}

// Put writes the document to a temporary file and renames it into place.
func (s *FileStore) Put(_ context.Context, ns Namespace, key string, value json.RawMessage) (json.RawMessage, error) {
	path := s.keyPath(ns, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return nil, fmt.Errorf("write %s/%s: %w", ns, key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return nil, fmt.Errorf("commit %s/%s: %w", ns, key, err)
	}
	return value, nil
}

// Close is a no-op; the file store holds no open handles between calls.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) keyPath(ns Namespace, key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", ns, key))
}

var _ EntityStore = (*FileStore)(nil)
