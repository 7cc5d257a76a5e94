package tui

import (
	"taskdeck/internal/api"
	"taskdeck/internal/store"
	"taskdeck/internal/tasklist"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Run starts the interactive TUI. The dark-mode preference is applied before
// the first frame so adaptive colors resolve against the right background.
func Run(svc api.Service, cfg *store.Config, baseURL string, log zerolog.Logger) error {
	applyColorProfilePreference()
	applyThemePreference(cfg.DarkMode)

	m := newAppModel(tasklist.New(svc), cfg, baseURL, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
