package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskJSON_CreatedAtAsUnixMillis(t *testing.T) {
	created := time.Date(2025, 3, 4, 5, 6, 7, 8_000_000, time.UTC)
	b, err := json.Marshal(Task{ID: "t1", Title: "x", ColumnID: "c1", Order: 2, CreatedAt: created})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"t1","title":"x","completed":false,"columnId":"c1","order":2,"createdAt":1741064767008}`, string(b))

	var got Task
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, created, got.CreatedAt)
}

func TestTaskJSON_CreatedAtForms(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"missing", `{"id":"t"}`, time.Time{}},
		{"null", `{"id":"t","createdAt":null}`, time.Time{}},
		{"zero", `{"id":"t","createdAt":0}`, time.Time{}},
		{"millis", `{"id":"t","createdAt":1735689600000}`, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `{"id":"t","createdAt":"2025-01-01T00:00:00Z"}`, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Task
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			require.True(t, tc.want.Equal(got.CreatedAt), "got %v", got.CreatedAt)
		})
	}
}

func TestTaskJSON_BadCreatedAt(t *testing.T) {
	var got Task
	err := json.Unmarshal([]byte(`{"id":"t","createdAt":"yesterday"}`), &got)
	require.Error(t, err)
	require.Contains(t, err.Error(), "task t")
}

func TestSnapshotClone(t *testing.T) {
	var empty Snapshot
	c := empty.Clone()
	require.NotNil(t, c.Columns)
	require.NotNil(t, c.Tasks)
	require.NotNil(t, c.SelectedTaskIDs)

	s := Snapshot{
		Columns:         []Column{{ID: "c", Title: "C"}},
		Tasks:           []Task{{ID: "t", Title: "T", ColumnID: "c"}},
		SelectedTaskIDs: []string{"t"},
		SearchQuery:     "q",
	}
	c = s.Clone()
	c.Columns[0].Title = "changed"
	c.Tasks[0].Completed = true
	c.SelectedTaskIDs[0] = "other"
	require.Equal(t, "C", s.Columns[0].Title)
	require.False(t, s.Tasks[0].Completed)
	require.Equal(t, "t", s.SelectedTaskIDs[0])
	require.Equal(t, "q", c.SearchQuery)
}

func TestSnapshotValidate(t *testing.T) {
	ok := Snapshot{
		Columns: []Column{{ID: "c", Title: "C", Order: 0}},
		Tasks:   []Task{{ID: "t", Title: "T", ColumnID: "c", Order: 0}},
	}
	require.NoError(t, ok.Validate())

	missingTitle := ok.Clone()
	missingTitle.Tasks[0].Title = ""
	err := missingTitle.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Title")

	negative := ok.Clone()
	negative.Columns[0].Order = -1
	require.Error(t, negative.Validate())

	dup := ok.Clone()
	dup.Tasks = append(dup.Tasks, Task{ID: "c", Title: "dup", ColumnID: "c"})
	err = dup.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate id")
}

func TestSnapshotCheckIDs(t *testing.T) {
	s := Snapshot{
		Columns: []Column{{ID: "c", Title: "", Order: 0}},
		Tasks:   []Task{{ID: "t", Title: "", ColumnID: "c"}},
	}
	require.NoError(t, s.CheckIDs())
	require.Error(t, s.Validate())

	s.Tasks = append(s.Tasks, Task{ID: "t", Title: "again", ColumnID: "c"})
	err := s.CheckIDs()
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate id "t"`)
}
