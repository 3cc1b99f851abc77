package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"taskboard/internal/logging"
	"taskboard/internal/store"
	"taskboard/internal/tui"
)

const tuiLogFile = "taskboard.log"

// runTUI opens the board and hands it to the interactive UI. The alt screen owns
// stderr, so logs go to a file unless one is already configured.
func runTUI(cmd *cobra.Command, app *App) error {
	if app.cfg.LogFile == "" {
		f, err := logging.OpenFile(filepath.Join(app.Dir, tuiLogFile))
		if err != nil {
			return writeErr(cmd, fmt.Errorf("open log file: %w", err))
		}
		logger, err := logging.New(f, app.LogLevel)
		if err != nil {
			_ = f.Close()
			return writeErr(cmd, err)
		}
		app.logger = logger.With("dir", app.Dir)
		app.closeLog = f.Close
	}

	sess, err := openSession(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer sess.Close()

	app.logger.Info("tui start", "backend", app.Backend, "key", app.Key)
	if err := tui.Run(sess.board, tui.Options{
		Logger:    app.logger,
		ViewState: &store.ViewStateFile{Dir: app.Dir},
	}); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}
