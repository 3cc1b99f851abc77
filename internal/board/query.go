package board

import (
	"sort"

	"taskboard/internal/model"
)

// ColumnsInOrder returns the columns sorted by Order (ties by ID).
func ColumnsInOrder(s model.Snapshot) []model.Column {
	out := append([]model.Column{}, s.Columns...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// TasksInColumn returns the tasks of one column in display order:
// Order, then CreatedAt, then ID.
func TasksInColumn(s model.Snapshot, columnID string) []model.Task {
	var out []model.Task
	for _, t := range s.Tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	SortTasks(out)
	return out
}

// SortTasks sorts in place using the same ordering as TasksInColumn.
func SortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return compareTasks(tasks[i], tasks[j]) < 0
	})
}

func compareTasks(a, b model.Task) int {
	if a.Order != b.Order {
		if a.Order < b.Order {
			return -1
		}
		return 1
	}
	if a.CreatedAt.Before(b.CreatedAt) {
		return -1
	}
	if a.CreatedAt.After(b.CreatedAt) {
		return 1
	}
	if a.ID < b.ID {
		return -1
	}
	if a.ID > b.ID {
		return 1
	}
	return 0
}

func TaskCount(s model.Snapshot, columnID string) int {
	n := 0
	for _, t := range s.Tasks {
		if t.ColumnID == columnID {
			n++
		}
	}
	return n
}

func FindTask(s model.Snapshot, id string) (model.Task, bool) {
	if i := taskIndex(s, id); i >= 0 {
		return s.Tasks[i], true
	}
	return model.Task{}, false
}

func FindColumn(s model.Snapshot, id string) (model.Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return model.Column{}, false
}

// ColumnIndex is the position of a column in ColumnsInOrder, or -1.
func ColumnIndex(s model.Snapshot, id string) int {
	for i, c := range ColumnsInOrder(s) {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// TaskIndex is the position of a task within its column's display order, or -1.
func TaskIndex(s model.Snapshot, taskID string) int {
	t, ok := FindTask(s, taskID)
	if !ok {
		return -1
	}
	for i, x := range TasksInColumn(s, t.ColumnID) {
		if x.ID == taskID {
			return i
		}
	}
	return -1
}

func taskIndex(s model.Snapshot, id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
