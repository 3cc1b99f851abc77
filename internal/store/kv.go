package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("not found")

// KV is the durable key-value slot the board snapshot is written to.
// Implementations must be safe for sequential use; the board never writes concurrently.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendFile     Backend = "file"
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return BackendSQLite, nil
	case "file", "json":
		return BackendFile, nil
	case "memory", "mem":
		return BackendMemory, nil
	case "redis":
		return BackendRedis, nil
	case "postgres", "postgresql", "pg":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("invalid backend: %q (expected sqlite|file|memory|redis|postgres)", s)
	}
}
