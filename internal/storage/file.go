package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each key as a file inside a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir. An empty dir
// defaults to ~/.tablero. The directory is created on first write.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".tablero")
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (f *FileStore) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
