package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Column struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Order int    `json:"order" validate:"gte=0"`
}

type Task struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Completed bool      `json:"completed"`
	ColumnID  string    `json:"columnId" validate:"required"`
	Order     int       `json:"order" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the full board state at one point in time.
// Snapshots are treated as values: transforms work on a Clone.
type Snapshot struct {
	Columns         []Column `json:"columns" validate:"dive"`
	Tasks           []Task   `json:"tasks" validate:"dive"`
	SelectedTaskIDs []string `json:"selectedTaskIds"`
	SearchQuery     string   `json:"searchQuery"`
}

// Clone returns a deep copy with non-nil slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Columns:         make([]Column, len(s.Columns)),
		Tasks:           make([]Task, len(s.Tasks)),
		SelectedTaskIDs: make([]string, len(s.SelectedTaskIDs)),
		SearchQuery:     s.SearchQuery,
	}
	copy(out.Columns, s.Columns)
	copy(out.Tasks, s.Tasks)
	copy(out.SelectedTaskIDs, s.SelectedTaskIDs)
	return out
}

var validate = validator.New()

// Validate checks the structural contract of a snapshot that crossed a boundary
// (decoded from storage or supplied by a caller in bulk).
func (s Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("invalid snapshot: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	return s.CheckIDs()
}

// CheckIDs reports duplicate ids across columns and tasks. Unlike Validate it
// accepts anything the board transforms can produce (empty titles included).
func (s Snapshot) CheckIDs() error {
	seen := map[string]bool{}
	for _, c := range s.Columns {
		if seen[c.ID] {
			return fmt.Errorf("invalid snapshot: duplicate id %q", c.ID)
		}
		seen[c.ID] = true
	}
	for _, t := range s.Tasks {
		if seen[t.ID] {
			return fmt.Errorf("invalid snapshot: duplicate id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// The persisted record stores createdAt as unix milliseconds.
type taskWire struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Completed bool            `json:"completed"`
	ColumnID  string          `json:"columnId"`
	Order     int             `json:"order"`
	CreatedAt json.RawMessage `json:"createdAt,omitempty"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	ms, _ := json.Marshal(t.CreatedAt.UnixMilli())
	if t.CreatedAt.IsZero() {
		ms = []byte("0")
	}
	return json.Marshal(taskWire{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		ColumnID:  t.ColumnID,
		Order:     t.Order,
		CreatedAt: ms,
	})
}

func (t *Task) UnmarshalJSON(b []byte) error {
	var w taskWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	created, err := parseCreatedAt(w.CreatedAt)
	if err != nil {
		return fmt.Errorf("task %s: createdAt: %w", w.ID, err)
	}
	*t = Task{
		ID:        w.ID,
		Title:     w.Title,
		Completed: w.Completed,
		ColumnID:  w.ColumnID,
		Order:     w.Order,
		CreatedAt: created,
	}
	return nil
}

// parseCreatedAt accepts unix millis (number) or an RFC 3339 string.
func parseCreatedAt(raw json.RawMessage) (time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, str)
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}, err
	}
	if ms == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(ms).UTC(), nil
}
