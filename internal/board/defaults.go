package board

import (
	_ "embed"
	"time"

	"github.com/BurntSushi/toml"

	"taskboard/internal/model"
)

//go:embed defaults.toml
var defaultsTOML string

type seedFile struct {
	Columns []struct {
		ID    string `toml:"id"`
		Title string `toml:"title"`
		Order int    `toml:"order"`
	} `toml:"columns"`
	Tasks []struct {
		ID        string    `toml:"id"`
		Title     string    `toml:"title"`
		Completed bool      `toml:"completed"`
		ColumnID  string    `toml:"columnId"`
		Order     int       `toml:"order"`
		CreatedAt time.Time `toml:"createdAt"`
	} `toml:"tasks"`
}

// DefaultSnapshot returns the bundled seed board: two columns and a few tasks,
// nothing selected and no query.
func DefaultSnapshot() model.Snapshot {
	s := model.Snapshot{
		Columns:         []model.Column{},
		Tasks:           []model.Task{},
		SelectedTaskIDs: []string{},
	}
	var seed seedFile
	if _, err := toml.Decode(defaultsTOML, &seed); err != nil {
		// The seed is compiled in; a decode failure is caught by tests.
		return s
	}
	for _, c := range seed.Columns {
		s.Columns = append(s.Columns, model.Column{ID: c.ID, Title: c.Title, Order: c.Order})
	}
	for _, t := range seed.Tasks {
		s.Tasks = append(s.Tasks, model.Task{
			ID:        t.ID,
			Title:     t.Title,
			Completed: t.Completed,
			ColumnID:  t.ColumnID,
			Order:     t.Order,
			CreatedAt: t.CreatedAt.UTC(),
		})
	}
	return s
}
