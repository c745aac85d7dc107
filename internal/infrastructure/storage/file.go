// internal/infrastructure/storage/file.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a file under a data directory. It is the
// default backend: a single-owner local store with no server dependency.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a value by key
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

// Set stores a value under key. The write goes through a temp file and a
// rename so a crash mid-write never leaves a truncated entry behind.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path := s.path(key)

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage write for %q: %w", key, err)
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store %q: %w", key, err)
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Health verifies the data directory is still present and is a directory
func (s *FileStore) Health(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("storage directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %q is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys look like "storefront:cart"; keep filenames flat and portable.
	name := strings.NewReplacer(":", "_", "/", "_").Replace(key) + ".json"
	return filepath.Join(s.dir, name)
}
