package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

const DefaultKey = "taskboard-state"

// Gateway loads and saves the whole board snapshot under one key.
// Storage failures are logged and swallowed: the in-memory board stays authoritative.
type Gateway struct {
	KV      KV
	Key     string
	Backend Backend
	Logger  *log.Logger
}

func (g *Gateway) key() string {
	if g.Key == "" {
		return DefaultKey
	}
	return g.Key
}

func (g *Gateway) logger() *log.Logger {
	if g.Logger == nil {
		return log.New(io.Discard)
	}
	return g.Logger
}

// Load returns the stored snapshot, or false when nothing usable is stored
// (missing key, unreadable backend, corrupt or invalid record).
func (g *Gateway) Load(ctx context.Context) (model.Snapshot, bool) {
	l := g.logger().With("key", g.key(), "backend", g.Backend)
	if g.KV == nil {
		return model.Snapshot{}, false
	}
	b, err := g.KV.Get(ctx, g.key())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.Debug("no saved board")
		} else {
			l.Warn("load board", "err", err)
		}
		return model.Snapshot{}, false
	}
	if isNullOrEmpty(b) {
		l.Debug("empty saved board")
		return model.Snapshot{}, false
	}
	s, err := decodeSnapshot(b)
	if err != nil {
		l.Warn("decode board", "err", err)
		return model.Snapshot{}, false
	}
	if err := s.CheckIDs(); err != nil {
		l.Warn("corrupt saved board", "err", err)
		return model.Snapshot{}, false
	}
	if err := s.Validate(); err != nil {
		l.Debug("saved board has incomplete fields", "err", err)
	}
	return board.PruneSelection(s), true
}

// LoadOrDefault is Load with the bundled seed board as fallback.
func (g *Gateway) LoadOrDefault(ctx context.Context) model.Snapshot {
	if s, ok := g.Load(ctx); ok {
		return s
	}
	return board.DefaultSnapshot()
}

// Write encodes and stores s, returning any failure. Explicit writes (init) use it.
func (g *Gateway) Write(ctx context.Context, s model.Snapshot) error {
	if g.KV == nil {
		return errors.New("no storage backend")
	}
	b, err := encodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	if err := g.KV.Put(ctx, g.key(), b); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// Save is Write with errors logged, never returned.
func (g *Gateway) Save(ctx context.Context, s model.Snapshot) {
	if g.KV == nil {
		return
	}
	l := g.logger().With("key", g.key(), "backend", g.Backend)
	if err := g.Write(ctx, s); err != nil {
		l.Error("persist board", "err", err)
		return
	}
	l.Debug("saved board", "columns", len(s.Columns), "tasks", len(s.Tasks))
}

// Observe makes the gateway a board.Observer.
func (g *Gateway) Observe(s model.Snapshot) {
	g.Save(context.Background(), s)
}
