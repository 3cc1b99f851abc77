package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// fixture: column A [t1, t2], column B [t3], column C empty.
func fixture() model.Snapshot {
	return model.Snapshot{
		Columns: []model.Column{
			{ID: "A", Title: "Todo", Order: 0},
			{ID: "B", Title: "Doing", Order: 1},
			{ID: "C", Title: "Done", Order: 2},
		},
		Tasks: []model.Task{
			{ID: "t1", Title: "Write docs", ColumnID: "A", Order: 0, CreatedAt: base},
			{ID: "t2", Title: "Fix bug", ColumnID: "A", Order: 1, CreatedAt: base.Add(time.Minute)},
			{ID: "t3", Title: "Review PR", ColumnID: "B", Order: 0, CreatedAt: base.Add(2 * time.Minute)},
		},
		SelectedTaskIDs: []string{},
	}
}

func taskIDs(ts []model.Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func taskOrders(ts []model.Task) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Order)
	}
	return out
}

func columnIDs(cs []model.Column) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

// requireDenseTasks asserts every column's task orders are exactly 0..n-1.
func requireDenseTasks(t *testing.T, s model.Snapshot) {
	t.Helper()
	for _, c := range s.Columns {
		ts := TasksInColumn(s, c.ID)
		for i, task := range ts {
			require.Equalf(t, i, task.Order, "column %s task %s", c.ID, task.ID)
		}
	}
}

func requireDenseColumns(t *testing.T, s model.Snapshot) {
	t.Helper()
	for i, c := range ColumnsInOrder(s) {
		require.Equalf(t, i, c.Order, "column %s", c.ID)
	}
}
