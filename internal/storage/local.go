package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes documents into the configured output directory,
// creating it on first use. Files are never overwritten because names
// are timestamp-unique.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Write(filename string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

func (s *LocalStore) Dir() string { return s.dir }
