// Package storage persists board snapshots as values in a string-keyed
// durable store. Three backends implement the same interface: a plain
// file per key, a SQLite table and an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jdromero/tablero/internal/config"
)

// ErrKeyNotFound is returned by Get when the key has no value.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a durable string-keyed store. Implementations must return
// ErrKeyNotFound from Get when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open creates the store selected by the storage configuration.
func Open(ctx context.Context, cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(cfg.Path)
	case config.BackendSQLite:
		return NewSQLiteStore(ctx, cfg.Path)
	case config.BackendS3:
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
