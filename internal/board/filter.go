package board

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"taskboard/internal/model"
)

type FilterStatus string

const (
	FilterAll        FilterStatus = "all"
	FilterCompleted  FilterStatus = "completed"
	FilterIncomplete FilterStatus = "incomplete"
)

func ParseFilterStatus(s string) (FilterStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "complete", "done":
		return FilterCompleted, nil
	case "incomplete", "open", "todo":
		return FilterIncomplete, nil
	default:
		return "", fmt.Errorf("invalid filter status: %q (expected all|completed|incomplete)", s)
	}
}

// Next cycles all -> incomplete -> completed -> all.
func (f FilterStatus) Next() FilterStatus {
	switch f {
	case FilterAll:
		return FilterIncomplete
	case FilterIncomplete:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Filter keeps tasks matching status, then those whose title contains query
// (trimmed, case-insensitive). Input order is preserved; tasks is not modified.
func Filter(tasks []model.Task, query string, status FilterStatus) []model.Task {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch status {
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		case FilterIncomplete:
			if t.Completed {
				continue
			}
		}
		if q != "" && !strings.Contains(fold.String(t.Title), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

type FilterResult struct {
	Tasks      []model.Task `json:"tasks"`
	HasResults bool         `json:"hasResults"`
	Total      int          `json:"total"`
}

func Search(tasks []model.Task, query string, status FilterStatus) FilterResult {
	ts := Filter(tasks, query, status)
	return FilterResult{Tasks: ts, HasResults: len(ts) > 0, Total: len(ts)}
}

// SetSearchQuery stores the query in the snapshot; matching stays with Filter.
func SetSearchQuery(q string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		s.SearchQuery = q
		return s
	}
}
