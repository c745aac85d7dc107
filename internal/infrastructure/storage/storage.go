// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurelius-time/storefront/internal/config"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value contract the storefront persists through.
// Values round-trip exactly through Set/Get. Callers treat failures as
// best-effort: a broken store degrades to in-memory state, never a crash.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Health reports whether the backend is reachable, for the health endpoint.
	Health(ctx context.Context) error
	Close() error
}

// Open constructs the store selected by configuration
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		return NewFileStore(cfg.Storage.Path)
	case config.StorageBackendRedis:
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
