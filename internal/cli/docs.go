package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/docs"
	"taskboard/internal/export"
)

func newDocsCmd(app *App) *cobra.Command {
	var (
		render bool
		width  int
		style  string
	)
	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Print a help topic (lists topics when none is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": docs.Topics()})
			}
			body, ok := docs.Get(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("topic", args[0]))
			}
			if render {
				out, err := export.Render(body, width, style)
				if err != nil {
					return writeErr(cmd, err)
				}
				body = out + "\n"
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "Render for the terminal (glamour)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width when rendering")
	cmd.Flags().StringVar(&style, "style", export.DefaultStyle, "Render style (dark|light|notty|ascii|...)")
	return cmd
}
