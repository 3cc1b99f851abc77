package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileKV writes one JSON file per key under Dir. Writes go to a temp file first and are
// renamed into place, so a crash never leaves a half-written board behind.
type FileKV struct {
	fs  afero.Fs
	dir string
}

func NewFileKV(fs afero.Fs, dir string) *FileKV {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileKV{fs: fs, dir: dir}
}

func (f *FileKV) path(key string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, strings.TrimSpace(key))
	return filepath.Join(f.dir, name+".json")
}

func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	b, err := afero.ReadFile(f.fs, f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (f *FileKV) Put(_ context.Context, key string, value []byte) error {
	if err := f.fs.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	path := f.path(key)
	tmp := path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, value, 0o644); err != nil {
		return err
	}
	return f.fs.Rename(tmp, path)
}

func (f *FileKV) Close() error { return nil }
