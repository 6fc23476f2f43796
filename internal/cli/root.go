package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"datepick/internal/config"
	"datepick/internal/format"
	"datepick/internal/store"
)

type App struct {
	ConfigPath string
	DBPath     string
	Profile    string
	PrettyJSON bool
	Format     string
	LogFile    string

	settings config.Settings
	ctx      context.Context
	logOut   *os.File
	loc      *time.Location
	now      func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{loc: time.Local, now: time.Now}

	cmd := &cobra.Command{
		Use:           "datepick",
		Short:         "Pick a date, month or year in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Pick a day and print it
  datepick

  # Pick a month, restricted to a saved profile's ranges
  datepick pick --type month --profile work

  # Is a date selectable?
  datepick check 2015-01-15 --range 2015-01-01..2015-01-31

  # Print January 2015 with the selectable days in bold
  datepick cal 2015-01 --profile work
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if len(args) == 0 {
				return runPick(cmd, app, sessionFlags{}, false)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DATEPICK_CONFIG", ""), "Path to datepick.yaml (default: search $DATEPICK_CONFIG_DIR, ~/.datepick, ./)")
	cmd.PersistentFlags().StringVar(&app.DBPath, "db", "", "Path to the sqlite database (default: db from config)")
	cmd.PersistentFlags().StringVar(&app.Profile, "profile", envOr("DATEPICK_PROFILE", ""), "Range profile to use")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DATEPICK_FORMAT", "json"), "Output format (json|table)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("DATEPICK_LOG_FILE", ""), "Write JSON debug logs to this file")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newRangesCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newCalCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// Execute runs the command tree and reports a failure on the failing
// command's stderr.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	c, err := cmd.ExecuteContextC(ctx)
	if err != nil {
		if c == nil {
			c = cmd
		}
		return writeErr(c, err)
	}
	return nil
}

func (app *App) setup(cmd *cobra.Command) error {
	s, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	app.settings = s
	if strings.TrimSpace(app.DBPath) == "" {
		app.DBPath = s.DB
	} else if p, err := homedir.Expand(app.DBPath); err == nil {
		app.DBPath = p
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if app.LogFile != "" {
		p, err := homedir.Expand(app.LogFile)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		app.logOut = f
		ctx = ctxlog.NewJSONLogger(ctx, f, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	app.ctx = ctxlog.ContextWith(ctx, "command", cmd.CommandPath())
	ctxlog.Logger(app.ctx).Debug("settings loaded", "file", s.File, "db", app.DBPath, "profile", app.Profile)
	return nil
}

func (app *App) teardown() error {
	if app.logOut == nil {
		return nil
	}
	err := app.logOut.Close()
	app.logOut = nil
	return err
}

func (app *App) context() context.Context {
	if app.ctx == nil {
		return context.Background()
	}
	return app.ctx
}

func (app *App) openStore() (*store.Store, error) {
	if strings.TrimSpace(app.DBPath) == "" {
		return nil, errors.New("no database path (set db in datepick.yaml or pass --db)")
	}
	return store.Open(app.context(), app.DBPath)
}

// profile loads the --profile profile. ok is false when no profile was
// requested.
func (app *App) profile() (p store.Profile, ok bool, err error) {
	if strings.TrimSpace(app.Profile) == "" {
		return store.Profile{}, false, nil
	}
	st, err := app.openStore()
	if err != nil {
		return store.Profile{}, false, err
	}
	defer st.Close()
	p, err = st.Profile(app.context(), app.Profile)
	if err != nil {
		return store.Profile{}, false, err
	}
	return p, true, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut wraps v in the {"data": ...} envelope for json. Table output
// prints v's rows directly.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if app.Format == "table" {
		if _, ok := v.(format.Tabular); ok {
			return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
		}
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
