package board

import "taskboard/internal/model"

// NewColumn builds a column with a fresh id. Order is assigned on insert.
func NewColumn(title string) model.Column {
	return model.Column{ID: NewID(columnIDPrefix), Title: title}
}

// InsertColumn appends c with Order = current column count.
func InsertColumn(c model.Column) Transform {
	return func(s model.Snapshot) model.Snapshot {
		c.Order = len(s.Columns)
		s.Columns = append(s.Columns, c)
		return s
	}
}

// AddColumn appends a new column. The caller trims and rejects empty titles.
func AddColumn(title string) Transform {
	return InsertColumn(NewColumn(title))
}

// DeleteColumn removes the column, every task in it, and those tasks' selection entries.
// Remaining column orders are left as they are (gaps close on the next reorder).
func DeleteColumn(id string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		if _, ok := FindColumn(s, id); !ok {
			return s
		}
		cols := s.Columns[:0]
		for _, c := range s.Columns {
			if c.ID != id {
				cols = append(cols, c)
			}
		}
		s.Columns = cols

		removed := map[string]bool{}
		tasks := s.Tasks[:0]
		for _, t := range s.Tasks {
			if t.ColumnID == id {
				removed[t.ID] = true
				continue
			}
			tasks = append(tasks, t)
		}
		s.Tasks = tasks
		s.SelectedTaskIDs = withoutIDs(s.SelectedTaskIDs, removed)
		return s
	}
}

// RenameColumn replaces a column title. Unknown ids are ignored.
func RenameColumn(id, title string) Transform {
	return func(s model.Snapshot) model.Snapshot {
		for i := range s.Columns {
			if s.Columns[i].ID == id {
				s.Columns[i].Title = title
			}
		}
		return s
	}
}

// ReorderColumns moves the column at src (in display order) to dst and renumbers
// every column densely. Equal indices or an out-of-range src leave the board unchanged;
// dst is clamped.
func ReorderColumns(src, dst int) Transform {
	return func(s model.Snapshot) model.Snapshot {
		ordered, moved := moveElement(ColumnsInOrder(s), src, dst)
		if !moved {
			return s
		}
		for i := range ordered {
			ordered[i].Order = i
		}
		s.Columns = ordered
		return s
	}
}

// SetColumns replaces the column list wholesale.
func SetColumns(cols []model.Column) Transform {
	return func(s model.Snapshot) model.Snapshot {
		s.Columns = append([]model.Column{}, cols...)
		return s
	}
}
