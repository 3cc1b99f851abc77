package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/internal/board"
)

func newDropCmd(app *App) *cobra.Command {
	var (
		ev         board.DropEvent
		sourceKind string
		destKind   string
		eventJSON  string
	)
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Apply a resolved drag-and-drop event",
		Long: strings.TrimSpace(`
Applies what a front-end reports when a drag ends: the dragged item (source) and
what it landed on (dest). Indices are display positions.

  column onto column  -> reorder columns
  task onto task      -> reorder within a column, or move across columns
  task onto column    -> append to that column

Anything else is a no-op and reports "changed": false.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(eventJSON) != "" {
				if err := json.Unmarshal([]byte(eventJSON), &ev); err != nil {
					return writeErr(cmd, err)
				}
			} else {
				k, err := board.ParseDropKind(sourceKind)
				if err != nil {
					return writeErr(cmd, err)
				}
				ev.SourceKind = k
				if k, err = board.ParseDropKind(destKind); err != nil {
					return writeErr(cmd, err)
				}
				ev.DestKind = k
			}

			sess, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer sess.Close()

			next, changed := sess.board.ApplyDrop(ev)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"changed": changed, "board": viewBoard(next)},
			})
		},
	}
	cmd.Flags().StringVar(&sourceKind, "source-kind", "", "column|task")
	cmd.Flags().StringVar(&ev.SourceID, "source-id", "", "Dragged column or task id")
	cmd.Flags().StringVar(&ev.SourceColumnID, "source-column", "", "Column the dragged task is in")
	cmd.Flags().IntVar(&ev.SourceIndex, "source-index", 0, "Display position of the dragged item")
	cmd.Flags().StringVar(&destKind, "dest-kind", "", "column|task")
	cmd.Flags().StringVar(&ev.DestID, "dest-id", "", "Column or task dropped onto")
	cmd.Flags().StringVar(&ev.DestColumnID, "dest-column", "", "Column of the drop target")
	cmd.Flags().IntVar(&ev.DestIndex, "dest-index", 0, "Display position of the drop target")
	cmd.Flags().StringVar(&eventJSON, "event", "", "Whole event as JSON (overrides the other flags)")
	return cmd
}
