// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at level (debug|info|warn|error; empty means warn).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.WarnLevel
	if strings.TrimSpace(level) != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "taskboard",
		ReportTimestamp: true,
	}), nil
}

// OpenFile opens path for appending, creating parent dirs.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
