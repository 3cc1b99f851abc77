package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

func newSelectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "select",
		Aliases: []string{"selection"},
		Short:   "Manage the task selection used by bulk commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Add or remove one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySelection(cmd, app, func(s model.Snapshot) (board.Transform, error) {
				if _, ok := board.FindTask(s, args[0]); !ok {
					return nil, errNotFound("task", args[0])
				}
				return board.ToggleSelect(args[0]), nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "column <column-id>",
		Short: "Select every task in a column, or deselect them if all already are",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySelection(cmd, app, func(s model.Snapshot) (board.Transform, error) {
				if _, ok := board.FindColumn(s, args[0]); !ok {
					return nil, errNotFound("column", args[0])
				}
				return board.SelectAllInColumn(args[0]), nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySelection(cmd, app, func(model.Snapshot) (board.Transform, error) {
				return board.ClearSelection(), nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List selected tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()
			tasks := board.SelectedTasks(sess.board.Snapshot())
			if tasks == nil {
				tasks = []model.Task{}
			}
			return writeOut(cmd, app, map[string]any{"data": tasks})
		},
	})
	return cmd
}

func applySelection(cmd *cobra.Command, app *App, build func(model.Snapshot) (board.Transform, error)) error {
	sess, err := openSession(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer sess.Close()

	fn, err := build(sess.board.Snapshot())
	if err != nil {
		return writeErr(cmd, err)
	}
	next := sess.board.Apply(fn)
	return writeOut(cmd, app, map[string]any{
		"data": map[string]any{"selectedTaskIds": next.SelectedTaskIDs},
	})
}
