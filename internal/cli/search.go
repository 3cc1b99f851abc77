package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/board"
)

func newSearchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Set, clear or run the board's saved search query",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <query>",
		Short: "Save the search query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setQuery(cmd, app, args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setQuery(cmd, app, "")
		},
	})

	var status string
	run := &cobra.Command{
		Use:   "run",
		Short: "List tasks matching the saved query",
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
			res := board.Search(tasksInDisplayOrder(s), s.SearchQuery, st)
			return writeOut(cmd, app, map[string]any{
				"data": res,
				"meta": map[string]any{"query": s.SearchQuery, "status": st},
			})
		},
	}
	run.Flags().StringVar(&status, "status", "all", "all|completed|incomplete")
	cmd.AddCommand(run)
	return cmd
}

func setQuery(cmd *cobra.Command, app *App, q string) error {
	sess, err := openSession(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer sess.Close()
	next := sess.board.Apply(board.SetSearchQuery(q))
	return writeOut(cmd, app, map[string]any{"data": map[string]any{"searchQuery": next.SearchQuery}})
}
