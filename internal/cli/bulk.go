package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

func newBulkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Act on every selected task at once (the selection is cleared afterwards)",
	}
	cmd.AddCommand(bulkCmd(app, "delete", "Delete selected tasks", func([]string) board.Transform {
		return board.DeleteSelected()
	}))
	cmd.AddCommand(bulkCmd(app, "complete", "Mark selected tasks completed", func([]string) board.Transform {
		return board.MarkSelectedComplete()
	}))
	cmd.AddCommand(bulkCmd(app, "incomplete", "Mark selected tasks not completed", func([]string) board.Transform {
		return board.MarkSelectedIncomplete()
	}))
	move := bulkCmd(app, "move <column-id>", "Append selected tasks to a column", func(args []string) board.Transform {
		return board.MoveSelectedToColumn(args[0])
	})
	move.Args = cobra.ExactArgs(1)
	cmd.AddCommand(move)
	return cmd
}

func bulkCmd(app *App, use, short string, fn func(args []string) board.Transform) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			cur := sess.board.Snapshot()
			if len(args) > 0 {
				if _, ok := board.FindColumn(cur, args[0]); !ok {
					return writeErr(cmd, errNotFound("column", args[0]))
				}
			}
			affected := board.SelectedTasks(cur)
			ids := make([]string, 0, len(affected))
			for _, t := range affected {
				ids = append(ids, t.ID)
			}

			next := sess.board.Apply(fn(args))

			tasks := make([]model.Task, 0, len(ids))
			for _, id := range ids {
				if t, ok := board.FindTask(next, id); ok {
					tasks = append(tasks, t)
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"affectedTaskIds": ids, "tasks": tasks},
			})
		},
	}
}
