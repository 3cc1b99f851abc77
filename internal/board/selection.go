package board

import "taskboard/internal/model"

// ToggleSelect adds or removes taskID from the selection set.
func ToggleSelect(taskID string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		if IsSelected(s, taskID) {
			s.SelectedTaskIDs = withoutIDs(s.SelectedTaskIDs, map[string]bool{taskID: true})
			return s
		}
		s.SelectedTaskIDs = append(s.SelectedTaskIDs, taskID)
		return s
	}
}

// SelectAllInColumn toggles the column as a whole: when every task in it is already
// selected, exactly those ids are deselected; otherwise they are added to the selection.
// Selections in other columns are left alone.
func SelectAllInColumn(columnID string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		var ids []string
		inColumn := map[string]bool{}
		for _, t := range TasksInColumn(s, columnID) {
			ids = append(ids, t.ID)
			inColumn[t.ID] = true
		}

		selected := selectionSet(s)
		allSelected := true
		for _, id := range ids {
			if !selected[id] {
				allSelected = false
				break
			}
		}

		if allSelected {
			s.SelectedTaskIDs = withoutIDs(s.SelectedTaskIDs, inColumn)
			return s
		}
		for _, id := range ids {
			if !selected[id] {
				s.SelectedTaskIDs = append(s.SelectedTaskIDs, id)
				selected[id] = true
			}
		}
		return s
	}
}

func ClearSelection() Transform {
	return func(s model.Snapshot) model.Snapshot {
		s.SelectedTaskIDs = []string{}
		return s
	}
}

func IsSelected(s model.Snapshot, taskID string) bool {
	for _, id := range s.SelectedTaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// SelectedTasks returns the selected tasks in snapshot iteration order.
func SelectedTasks(s model.Snapshot) []model.Task {
	selected := selectionSet(s)
	var out []model.Task
	for _, t := range s.Tasks {
		if selected[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// PruneSelection drops selection entries that no longer name a task, and duplicates.
func PruneSelection(s model.Snapshot) model.Snapshot {
	present := map[string]bool{}
	for _, t := range s.Tasks {
		present[t.ID] = true
	}
	out := make([]string, 0, len(s.SelectedTaskIDs))
	seen := map[string]bool{}
	for _, id := range s.SelectedTaskIDs {
		if present[id] && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	s.SelectedTaskIDs = out
	return s
}

func selectionSet(s model.Snapshot) map[string]bool {
	set := make(map[string]bool, len(s.SelectedTaskIDs))
	for _, id := range s.SelectedTaskIDs {
		set[id] = true
	}
	return set
}

func withoutIDs(ids []string, drop map[string]bool) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}
