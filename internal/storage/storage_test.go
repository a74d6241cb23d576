package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jdromero/tablero/internal/config"
)

func TestOpen_FileBackend(t *testing.T) {
	t.Parallel()

	cfg := config.Storage{Backend: config.BackendFile, Path: t.TempDir()}
	store, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Expected *FileStore, got %T", store)
	}
}

func TestOpen_EmptyBackendDefaultsToFile(t *testing.T) {
	t.Parallel()

	cfg := config.Storage{Path: t.TempDir()}
	store, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Expected *FileStore, got %T", store)
	}
}

func TestOpen_SQLiteBackend(t *testing.T) {
	t.Parallel()

	cfg := config.Storage{
		Backend: config.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "test.db"),
	}
	store, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, ok := store.(*SQLiteStore); !ok {
		t.Errorf("Expected *SQLiteStore, got %T", store)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := config.Storage{Backend: "carrier-pigeon"}
	if _, err := Open(context.Background(), cfg); err == nil {
		t.Fatal("Expected error for unknown backend")
	}
}
