package board

import "taskboard/internal/model"

// Bulk operations act on the selection at call time and always leave it empty.

func DeleteSelected() Transform {
	return func(s model.Snapshot) model.Snapshot {
		selected := selectionSet(s)
		tasks := s.Tasks[:0]
		for _, t := range s.Tasks {
			if !selected[t.ID] {
				tasks = append(tasks, t)
			}
		}
		s.Tasks = tasks
		s.SelectedTaskIDs = []string{}
		return s
	}
}

func MarkSelectedComplete() Transform {
	return setSelectedCompleted(true)
}

func MarkSelectedIncomplete() Transform {
	return setSelectedCompleted(false)
}

func setSelectedCompleted(done bool) Transform {
	return func(s model.Snapshot) model.Snapshot {
		selected := selectionSet(s)
		for i := range s.Tasks {
			if selected[s.Tasks[i].ID] {
				s.Tasks[i].Completed = done
			}
		}
		s.SelectedTaskIDs = []string{}
		return s
	}
}

// MoveSelectedToColumn appends every selected task to target, after the target's
// unselected tasks, keeping the selected tasks' current iteration order.
// Selected tasks already in target are re-appended too. target is not validated.
func MoveSelectedToColumn(target string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		selected := selectionSet(s)
		next := 0
		for _, t := range s.Tasks {
			if t.ColumnID == target && !selected[t.ID] {
				next++
			}
		}
		for i := range s.Tasks {
			if !selected[s.Tasks[i].ID] {
				continue
			}
			s.Tasks[i].ColumnID = target
			s.Tasks[i].Order = next
			next++
		}
		s.SelectedTaskIDs = []string{}
		return s
	}
}
