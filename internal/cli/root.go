package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/format"
	"taskboard/internal/logging"
	"taskboard/internal/store"
)

type App struct {
	Dir        string
	Backend    string
	DSN        string
	Key        string
	Format     string
	LogLevel   string
	PrettyJSON bool

	cfg      config.Config
	logger   *log.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Kanban task board (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  taskboard

  # Scriptable commands
  taskboard show --pretty
  taskboard tasks add col-todo "Write release notes"
  taskboard select column col-todo
  taskboard bulk move col-done
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.resolve(cmd); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			_ = app.closeLog()
			app.closeLog = nil
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKBOARD_DIR", ""), "Board directory (default: nearest .taskboard, else ./.taskboard)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "sqlite", "Storage backend (sqlite|file|memory|redis|postgres)")
	cmd.PersistentFlags().StringVar(&app.DSN, "dsn", "", "Backend DSN (sqlite path, redis:// URL or postgres DSN)")
	cmd.PersistentFlags().StringVar(&app.Key, "key", store.DefaultKey, "Storage key the board is saved under")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "json", "Output format (json|edn|yaml)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newColumnsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newSelectCmd(app))
	cmd.AddCommand(newBulkCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newDropCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// resolve fills app from the config layers and builds the logger.
func (app *App) resolve(cmd *cobra.Command) error {
	if app.Dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return err
		}
		app.Dir = d
	}
	config.LoadDotEnv(".env", filepath.Join(app.Dir, ".env"))

	cfg, err := config.Load(nil, app.Dir, cmd.Flags())
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.Backend = cfg.Backend
	app.DSN = cfg.DSN
	app.Key = cfg.Key
	app.Format = cfg.Format
	app.LogLevel = cfg.LogLevel

	var w io.Writer = cmd.ErrOrStderr()
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
		app.closeLog = f.Close
	}
	logger, err := logging.New(w, cfg.LogLevel)
	if err != nil {
		return err
	}
	app.logger = logger.With("dir", app.Dir)
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
