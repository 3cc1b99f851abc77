package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/internal/model"
	"taskboard/internal/store"
)

// session is one opened board: the backend, the gateway persisting every Apply,
// and the in-memory store seeded from it.
type session struct {
	kv      store.KV
	gateway *store.Gateway
	board   *board.Store
}

func openSession(cmd *cobra.Command, app *App) (*session, error) {
	backend, err := store.ParseBackend(app.Backend)
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cmd.Context(), store.Options{Backend: backend, Dir: app.Dir, DSN: app.DSN})
	if err != nil {
		return nil, err
	}
	gw := &store.Gateway{KV: kv, Key: app.Key, Backend: backend, Logger: app.logger}
	snap := gw.LoadOrDefault(cmd.Context())
	return &session{kv: kv, gateway: gw, board: board.New(snap, gw)}, nil
}

func (s *session) Close() {
	_ = s.kv.Close()
}

type columnView struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Order     int          `json:"order"`
	TaskCount int          `json:"taskCount"`
	Tasks     []model.Task `json:"tasks,omitempty"`
}

type boardView struct {
	Columns         []columnView `json:"columns"`
	SelectedTaskIDs []string     `json:"selectedTaskIds"`
	SearchQuery     string       `json:"searchQuery"`
}

func viewColumn(s model.Snapshot, c model.Column, withTasks bool) columnView {
	tasks := board.TasksInColumn(s, c.ID)
	v := columnView{ID: c.ID, Title: c.Title, Order: c.Order, TaskCount: len(tasks)}
	if withTasks {
		v.Tasks = tasks
	}
	return v
}

func viewBoard(s model.Snapshot) boardView {
	out := boardView{Columns: []columnView{}, SelectedTaskIDs: s.SelectedTaskIDs, SearchQuery: s.SearchQuery}
	for _, c := range board.ColumnsInOrder(s) {
		out.Columns = append(out.Columns, viewColumn(s, c, true))
	}
	if out.SelectedTaskIDs == nil {
		out.SelectedTaskIDs = []string{}
	}
	return out
}

// tasksInDisplayOrder lists tasks column by column, the way the board shows them.
func tasksInDisplayOrder(s model.Snapshot) []model.Task {
	out := make([]model.Task, 0, len(s.Tasks))
	for _, c := range board.ColumnsInOrder(s) {
		out = append(out, board.TasksInColumn(s, c.ID)...)
	}
	return out
}
