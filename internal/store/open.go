package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

type Options struct {
	Backend Backend
	// Dir is the workspace directory (sqlite and file backends).
	Dir string
	// DSN overrides the sqlite path, or is the redis URL / postgres DSN.
	DSN string
	// Fs is used by the file backend; defaults to the OS filesystem.
	Fs afero.Fs
}

// Open returns the KV for opts.Backend.
func Open(ctx context.Context, opts Options) (KV, error) {
	dsn := strings.TrimSpace(opts.DSN)
	switch opts.Backend {
	case BackendSQLite, "":
		path := dsn
		if path == "" {
			if strings.TrimSpace(opts.Dir) == "" {
				return nil, errors.New("sqlite backend: missing dir")
			}
			path = filepath.Join(opts.Dir, sqliteFileName)
		}
		return OpenSQLite(ctx, path)
	case BackendFile:
		if strings.TrimSpace(opts.Dir) == "" {
			return nil, errors.New("file backend: missing dir")
		}
		return NewFileKV(opts.Fs, opts.Dir), nil
	case BackendMemory:
		return NewMemoryKV(), nil
	case BackendRedis:
		if dsn == "" {
			return nil, errors.New("redis backend: missing --dsn (redis://host:port/db)")
		}
		return OpenRedis(ctx, dsn)
	case BackendPostgres:
		if dsn == "" {
			return nil, errors.New("postgres backend: missing --dsn")
		}
		return OpenPostgres(ctx, dsn)
	default:
		_, err := ParseBackend(string(opts.Backend))
		return nil, err
	}
}
