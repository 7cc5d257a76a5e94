package cli

import (
	"os"
	"strings"
	"time"

	"taskdeck/internal/api"
	"taskdeck/internal/format"
	"taskdeck/internal/logging"
	"taskdeck/internal/store"
	"taskdeck/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type App struct {
	BaseURL    string
	Timeout    time.Duration
	PrettyJSON bool
	Format     string

	// svc overrides the HTTP client (tests).
	svc api.Service
	// log is set lazily by logger().
	log *zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Terminal client for a remote to-do service (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdeck

  # Scriptable commands
  taskdeck tasks list --filter pending
  taskdeck tasks add Buy milk
  taskdeck tasks done 42

  # Display preference
  taskdeck prefs dark-mode on
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api", envOr("TASKDECK_API", ""), "Task service base URL (default: config file, then built-in)")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 0, "Per-request timeout (default 10s)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKDECK_FORMAT", "json"), "Output format (json|plain)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newPrefsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	log, closeLog := logging.ForTUI()
	defer func() { _ = closeLog() }()

	svc := app.svc
	baseURL := ""
	if svc == nil {
		client := api.New(app.resolveBaseURL(cfg),
			api.WithTimeout(app.Timeout),
			api.WithLogger(log),
		)
		baseURL = client.BaseURL()
		svc = client
	}
	return tui.Run(svc, cfg, baseURL, log)
}

// service builds the task service for one CLI invocation.
func (app *App) service() (api.Service, error) {
	if app.svc != nil {
		return app.svc, nil
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	return api.New(app.resolveBaseURL(cfg),
		api.WithTimeout(app.Timeout),
		api.WithLogger(app.logger()),
	), nil
}

// resolveBaseURL picks the service URL: flag/env > config file > built-in.
func (app *App) resolveBaseURL(cfg *store.Config) string {
	if strings.TrimSpace(app.BaseURL) != "" {
		return app.BaseURL
	}
	if cfg != nil && strings.TrimSpace(cfg.APIBaseURL) != "" {
		return cfg.APIBaseURL
	}
	return ""
}

func (app *App) logger() zerolog.Logger {
	if app.log == nil {
		l := logging.ForCLI()
		app.log = &l
	}
	return *app.log
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
