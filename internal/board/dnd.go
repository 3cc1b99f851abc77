package board

import (
	"fmt"
	"strings"

	"taskboard/internal/model"
)

type DropKind string

const (
	DropColumn DropKind = "column"
	DropTask   DropKind = "task"
)

func ParseDropKind(s string) (DropKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "column", "col":
		return DropColumn, nil
	case "task":
		return DropTask, nil
	default:
		return "", fmt.Errorf("invalid drop kind: %q (expected column|task)", s)
	}
}

// DropEvent is a drop already resolved by the UI layer: what was dragged, and what it
// landed on. Indices are positions in display order (ColumnsInOrder / TasksInColumn).
type DropEvent struct {
	SourceKind     DropKind `json:"sourceKind"`
	SourceID       string   `json:"sourceId"`
	SourceColumnID string   `json:"sourceColumnId,omitempty"`
	SourceIndex    int      `json:"sourceIndex"`

	DestKind     DropKind `json:"destKind"`
	DestID       string   `json:"destId"`
	DestColumnID string   `json:"destColumnId,omitempty"`
	DestIndex    int      `json:"destIndex"`
}

// CanAcceptDrop is the predicate a drop target consults while something hovers over it.
// Columns accept other columns; a column accepts a task from a different column.
func CanAcceptDrop(sourceKind DropKind, sourceColumnID, destColumnID string) bool {
	switch sourceKind {
	case DropColumn, DropTask:
		return sourceColumnID != destColumnID
	default:
		return false
	}
}

// Drop turns a resolved drop into the matching transform. Combinations that do not
// describe a move (same position, unknown kinds, task onto its own column) are no-ops.
func Drop(ev DropEvent) Transform {
	switch {
	case ev.SourceKind == DropColumn && ev.DestKind == DropColumn:
		if ev.SourceIndex == ev.DestIndex {
			return nil
		}
		return ReorderColumns(ev.SourceIndex, ev.DestIndex)

	case ev.SourceKind == DropTask && ev.DestKind == DropTask:
		if ev.SourceColumnID == ev.DestColumnID {
			if ev.SourceIndex == ev.DestIndex || ev.SourceColumnID == "" {
				return nil
			}
			return ReorderWithinColumn(ev.SourceColumnID, ev.SourceIndex, ev.DestIndex)
		}
		return MoveAcrossColumns(ev.SourceID, ev.SourceColumnID, ev.DestColumnID, ev.DestIndex)

	case ev.SourceKind == DropTask && ev.DestKind == DropColumn:
		dstCol := ev.DestColumnID
		if dstCol == "" {
			dstCol = ev.DestID
		}
		if !CanAcceptDrop(DropTask, ev.SourceColumnID, dstCol) {
			return nil
		}
		return MoveAcrossColumns(ev.SourceID, ev.SourceColumnID, dstCol, AppendIndex)
	}
	return nil
}

// ApplyDrop is Drop bound to the store. It reports whether the event changed the
// board; drops that leave it as it was (including unknown ids and out-of-range
// indices) do not reach observers.
func (s *Store) ApplyDrop(ev DropEvent) (model.Snapshot, bool) {
	fn := Drop(ev)
	if fn == nil {
		return s.Snapshot(), false
	}
	return s.apply(fn, true)
}
