package store

import (
	"encoding/json"
	"strings"

	"taskboard/internal/model"
)

// wireSnapshot is the persisted record. Pointer fields tell "absent" from "empty".
type wireSnapshot struct {
	Columns         []model.Column `json:"columns"`
	Tasks           []model.Task   `json:"tasks"`
	SelectedTaskIDs *[]string      `json:"selectedTaskIds,omitempty"`
	SearchQuery     *string        `json:"searchQuery,omitempty"`
}

func encodeSnapshot(s model.Snapshot) ([]byte, error) {
	s = s.Clone()
	return json.Marshal(wireSnapshot{
		Columns:         s.Columns,
		Tasks:           s.Tasks,
		SelectedTaskIDs: &s.SelectedTaskIDs,
		SearchQuery:     &s.SearchQuery,
	})
}

// decodeSnapshot parses a stored record, defaulting optional fields written by older
// versions (no selection, no query).
func decodeSnapshot(b []byte) (model.Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(b, &w); err != nil {
		return model.Snapshot{}, err
	}
	s := model.Snapshot{
		Columns: w.Columns,
		Tasks:   w.Tasks,
	}
	if w.SelectedTaskIDs != nil {
		s.SelectedTaskIDs = *w.SelectedTaskIDs
	}
	if w.SearchQuery != nil {
		s.SearchQuery = *w.SearchQuery
	}
	return s.Clone(), nil
}

func isNullOrEmpty(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	s := strings.TrimSpace(string(b))
	return s == "" || s == "null"
}
