package board

import (
	"sort"
	"time"

	"taskboard/internal/model"
)

// AppendIndex as a destination index means "after the last task".
const AppendIndex = -1

// NewTask builds an incomplete task with a fresh id. CreatedAt is kept at
// millisecond precision, which is what the persisted record carries.
func NewTask(title, columnID string, now time.Time) model.Task {
	return model.Task{
		ID:        NewID(taskIDPrefix),
		Title:     title,
		ColumnID:  columnID,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}
}

// InsertTask appends t to its column with Order = current task count of that column.
// The column is not checked for existence.
func InsertTask(t model.Task) Transform {
	return func(s model.Snapshot) model.Snapshot {
		t.Order = TaskCount(s, t.ColumnID)
		t.Completed = false
		s.Tasks = append(s.Tasks, t)
		return s
	}
}

// AddTask appends a new task to columnID. The caller trims and rejects empty titles.
func AddTask(title, columnID string) Transform {
	return InsertTask(NewTask(title, columnID, time.Now()))
}

// DeleteTask removes the task and its selection entry. Sibling orders are not renumbered.
func DeleteTask(id string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		if i := taskIndex(s, id); i >= 0 {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
		}
		s.SelectedTaskIDs = withoutIDs(s.SelectedTaskIDs, map[string]bool{id: true})
		return s
	}
}

func ToggleComplete(id string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		if i := taskIndex(s, id); i >= 0 {
			s.Tasks[i].Completed = !s.Tasks[i].Completed
		}
		return s
	}
}

// RenameTask replaces the title; validation happens upstream.
func RenameTask(id, title string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		if i := taskIndex(s, id); i >= 0 {
			s.Tasks[i].Title = title
		}
		return s
	}
}

// ReorderWithinColumn moves the task at src to dst inside one column and renumbers
// that column densely. Other columns are untouched.
func ReorderWithinColumn(columnID string, src, dst int) Transform {
	return func(s model.Snapshot) model.Snapshot {
		ordered, moved := moveElement(TasksInColumn(s, columnID), src, dst)
		if !moved {
			return s
		}
		return replaceColumnTasks(s, map[string][]model.Task{columnID: ordered})
	}
}

// MoveAcrossColumns takes a task out of srcColumnID, inserts it into dstColumnID at
// dstIndex (AppendIndex or any out-of-range value is clamped), and renumbers both
// columns densely in one step.
func MoveAcrossColumns(taskID, srcColumnID, dstColumnID string, dstIndex int) Transform {
	return func(s model.Snapshot) model.Snapshot {
		i := taskIndex(s, taskID)
		if i < 0 {
			return s
		}
		moved := s.Tasks[i]
		if moved.ColumnID != srcColumnID {
			// Trust the snapshot over a stale event.
			srcColumnID = moved.ColumnID
		}
		if srcColumnID == dstColumnID {
			from := TaskIndex(s, taskID)
			to := dstIndex
			if to == AppendIndex {
				to = TaskCount(s, dstColumnID) - 1
			}
			return ReorderWithinColumn(dstColumnID, from, to)(s)
		}

		var src []model.Task
		for _, t := range TasksInColumn(s, srcColumnID) {
			if t.ID != taskID {
				src = append(src, t)
			}
		}
		dst := TasksInColumn(s, dstColumnID)
		if dstIndex == AppendIndex {
			dstIndex = len(dst)
		}
		moved.ColumnID = dstColumnID
		dst = insertAt(dst, dstIndex, moved)

		return replaceColumnTasks(s, map[string][]model.Task{
			srcColumnID: src,
			dstColumnID: dst,
		})
	}
}

// SetTasks replaces the task list wholesale and drops selection entries for tasks
// that are gone.
func SetTasks(tasks []model.Task) Transform {
	return func(s model.Snapshot) model.Snapshot {
		s.Tasks = append([]model.Task{}, tasks...)
		return PruneSelection(s)
	}
}

// replaceColumnTasks rewrites the given columns' task sequences with dense orders.
// Tasks in other columns keep their relative position at the front; rewritten
// columns follow in the order they first appear in the snapshot.
func replaceColumnTasks(s model.Snapshot, byColumn map[string][]model.Task) model.Snapshot {
	out := make([]model.Task, 0, len(s.Tasks))
	var colOrder []string
	seen := map[string]bool{}
	for _, t := range s.Tasks {
		if _, ok := byColumn[t.ColumnID]; !ok {
			out = append(out, t)
			continue
		}
		if !seen[t.ColumnID] {
			seen[t.ColumnID] = true
			colOrder = append(colOrder, t.ColumnID)
		}
	}
	rest := make([]string, 0, len(byColumn))
	for id := range byColumn {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	colOrder = append(colOrder, rest...)

	for _, id := range colOrder {
		for i, t := range byColumn[id] {
			t.Order = i
			out = append(out, t)
		}
	}
	s.Tasks = out
	return s
}
