package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/board"
)

func newColumnsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "columns",
		Aliases: []string{"column", "cols"},
		Short:   "Manage columns",
	}
	cmd.AddCommand(newColumnsListCmd(app))
	cmd.AddCommand(newColumnsAddCmd(app))
	cmd.AddCommand(newColumnsRenameCmd(app))
	cmd.AddCommand(newColumnsDeleteCmd(app))
	cmd.AddCommand(newColumnsReorderCmd(app))
	return cmd
}

func newColumnsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List columns in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			s := sess.board.Snapshot()
			out := []columnView{}
			for _, c := range board.ColumnsInOrder(s) {
				out = append(out, viewColumn(s, c, false))
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}

func newColumnsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Append a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := requireTitle(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			c := board.NewColumn(title)
			next := sess.board.Apply(board.InsertColumn(c))
			got, _ := board.FindColumn(next, c.ID)
			return writeOut(cmd, app, map[string]any{"data": got})
		},
	}
}

func newColumnsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <column-id> <title>",
		Short: "Rename a column",
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

			id := args[0]
			if _, ok := board.FindColumn(sess.board.Snapshot(), id); !ok {
				return writeErr(cmd, errNotFound("column", id))
			}
			next := sess.board.Apply(board.RenameColumn(id, title))
			got, _ := board.FindColumn(next, id)
			return writeOut(cmd, app, map[string]any{"data": got})
		},
	}
}

func newColumnsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column and every task in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			id := args[0]
			cur := sess.board.Snapshot()
			if _, ok := board.FindColumn(cur, id); !ok {
				return writeErr(cmd, errNotFound("column", id))
			}
			removed := board.TasksInColumn(cur, id)
			sess.board.Apply(board.DeleteColumn(id))

			ids := make([]string, 0, len(removed))
			for _, t := range removed {
				ids = append(ids, t.ID)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"deleted": id, "deletedTaskIds": ids},
			})
		},
	}
}

func newColumnsReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <from-index> <to-index>",
		Short: "Move the column at one display position to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("from-index", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			to, err := parseIndex("to-index", args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			next := sess.board.Apply(board.ReorderColumns(from, to))
			out := []columnView{}
			for _, c := range board.ColumnsInOrder(next) {
				out = append(out, viewColumn(next, c, false))
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
