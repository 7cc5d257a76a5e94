package cli

import (
	"fmt"
	"strings"

	"taskdeck/internal/store"

	"github.com/spf13/cobra"
)

type prefsOutput struct {
	DarkMode   bool   `json:"darkMode"`
	APIBaseURL string `json:"apiBaseUrl,omitempty"`
}

func (o prefsOutput) Plain() string {
	mode := "off"
	if o.DarkMode {
		mode = "on"
	}
	s := "dark-mode: " + mode
	if o.APIBaseURL != "" {
		s += "\napi: " + o.APIBaseURL
	}
	return s
}

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and write local preferences",
	}
	cmd.AddCommand(newPrefsShowCmd(app))
	cmd.AddCommand(newPrefsDarkModeCmd(app))
	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			return writeOut(cmd, app, prefsOutput{DarkMode: cfg.DarkMode, APIBaseURL: cfg.APIBaseURL})
		},
	}
}

func newPrefsDarkModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dark-mode on|off",
		Short: "Persist the dark-mode display preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dark bool
			switch strings.ToLower(strings.TrimSpace(args[0])) {
			case "on", "true", "1":
				dark = true
			case "off", "false", "0":
				dark = false
			default:
				return fmt.Errorf("unknown value: %s (want on|off)", args[0])
			}
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			cfg.DarkMode = dark
			if err := store.Save(cfg); err != nil {
				return err
			}
			return writeOut(cmd, app, prefsOutput{DarkMode: cfg.DarkMode, APIBaseURL: cfg.APIBaseURL})
		},
	}
}
