package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/board"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default board to storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			if _, ok := sess.gateway.Load(cmd.Context()); ok && !force {
				return writeErr(cmd, boardExistsError{key: app.Key})
			}
			snap := board.DefaultSnapshot()
			if err := sess.gateway.Write(cmd.Context(), snap); err != nil {
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":     app.Dir,
					"backend": app.Backend,
					"key":     app.Key,
					"board":   viewBoard(snap),
				},
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing board")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the whole board (columns in order, tasks grouped)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()
			return writeOut(cmd, app, map[string]any{"data": viewBoard(sess.board.Snapshot())})
		},
	}
}
