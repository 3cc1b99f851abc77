package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/board"
	"taskboard/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		render    bool
		width     int
		style     string
		title     string
		query     string
		status    string
		skipEmpty bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board as a Markdown checklist",
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

			md := export.Markdown(sess.board.Snapshot(), export.Options{
				Title:     title,
				Query:     query,
				Status:    st,
				SkipEmpty: skipEmpty,
			})
			if render {
				out, err := export.Render(md, width, style)
				if err != nil {
					return writeErr(cmd, err)
				}
				md = out + "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "Render for the terminal (glamour)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width when rendering")
	cmd.Flags().StringVar(&style, "style", export.DefaultStyle, "Render style (dark|light|notty|ascii|...)")
	cmd.Flags().StringVar(&title, "title", "", "Document heading (default: Board)")
	cmd.Flags().StringVar(&query, "query", "", "Only tasks whose title contains this")
	cmd.Flags().StringVar(&status, "status", "all", "all|completed|incomplete")
	cmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "Leave out columns with no matching tasks")
	return cmd
}
