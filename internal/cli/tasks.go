package cli

import (
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksRenameCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksReorderCmd(app))
	cmd.AddCommand(newTasksMoveCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var (
		columnID string
		query    string
		status   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in board order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := board.ParseFilterStatus(status)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			s := sess.board.Snapshot()
			var tasks []model.Task
			if columnID != "" {
				if _, ok := board.FindColumn(s, columnID); !ok {
					return writeErr(cmd, errNotFound("column", columnID))
				}
				tasks = board.TasksInColumn(s, columnID)
			} else {
				tasks = tasksInDisplayOrder(s)
			}
			return writeOut(cmd, app, map[string]any{"data": board.Filter(tasks, query, st)})
		},
	}
	cmd.Flags().StringVar(&columnID, "column", "", "Only tasks in this column")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive title substring")
	cmd.Flags().StringVar(&status, "status", "all", "all|completed|incomplete")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			s := sess.board.Snapshot()
			t, ok := board.FindTask(s, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("task", args[0]))
			}
			return writeOut(cmd, app, map[string]any{
				"data": t,
				"meta": map[string]any{
					"selected": board.IsSelected(s, t.ID),
					"index":    board.TaskIndex(s, t.ID),
				},
			})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <column-id> <title>",
		Short: "Append a task to a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := requireTitle(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			columnID := args[0]
			if _, ok := board.FindColumn(sess.board.Snapshot(), columnID); !ok {
				return writeErr(cmd, errNotFound("column", columnID))
			}
			t := board.NewTask(title, columnID, time.Now())
			next := sess.board.Apply(board.InsertTask(t))
			got, _ := board.FindTask(next, t.ID)
			return writeOut(cmd, app, map[string]any{"data": got})
		},
	}
}

// taskCmd builds a "<verb> <task-id>" command that applies one transform to an existing task.
func taskCmd(app *App, use, short string, nargs int, fn func(id string, args []string) board.Transform) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			id := args[0]
			if _, ok := board.FindTask(sess.board.Snapshot(), id); !ok {
				return writeErr(cmd, errNotFound("task", id))
			}
			next := sess.board.Apply(fn(id, args[1:]))
			if got, ok := board.FindTask(next, id); ok {
				return writeOut(cmd, app, map[string]any{"data": got})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
}

func newTasksRenameCmd(app *App) *cobra.Command {
	cmd := taskCmd(app, "rename <task-id> <title>", "Rename a task", 2, func(id string, args []string) board.Transform {
		return board.RenameTask(id, args[0])
	})
	run := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		title, err := requireTitle(args[1])
		if err != nil {
			return writeErr(c, err)
		}
		return run(c, []string{args[0], title})
	}
	return cmd
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return taskCmd(app, "toggle <task-id>", "Flip a task's completed flag", 1, func(id string, _ []string) board.Transform {
		return board.ToggleComplete(id)
	})
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return taskCmd(app, "delete <task-id>", "Delete a task", 1, func(id string, _ []string) board.Transform {
		return board.DeleteTask(id)
	})
}

func newTasksReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <column-id> <from-index> <to-index>",
		Short: "Move a task within its column by display position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("from-index", args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			to, err := parseIndex("to-index", args[2])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			columnID := args[0]
			if _, ok := board.FindColumn(sess.board.Snapshot(), columnID); !ok {
				return writeErr(cmd, errNotFound("column", columnID))
			}
			next := sess.board.Apply(board.ReorderWithinColumn(columnID, from, to))
			return writeOut(cmd, app, map[string]any{"data": board.TasksInColumn(next, columnID)})
		},
	}
}

func newTasksMoveCmd(app *App) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "move <task-id> <column-id>",
		Short: "Move a task to another column (appends unless --index is given)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			taskID, columnID := args[0], args[1]
			cur := sess.board.Snapshot()
			t, ok := board.FindTask(cur, taskID)
			if !ok {
				return writeErr(cmd, errNotFound("task", taskID))
			}
			if _, ok := board.FindColumn(cur, columnID); !ok {
				return writeErr(cmd, errNotFound("column", columnID))
			}
			next := sess.board.Apply(board.MoveAcrossColumns(taskID, t.ColumnID, columnID, index))
			got, _ := board.FindTask(next, taskID)
			return writeOut(cmd, app, map[string]any{"data": got})
		},
	}
	cmd.Flags().IntVar(&index, "index", board.AppendIndex, "Destination position in the column (-1 appends)")
	return cmd
}
