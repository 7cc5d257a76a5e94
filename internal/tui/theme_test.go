package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func saveBackground(t *testing.T) {
	t.Helper()
	old := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(old) })
}

func TestApplyThemePreferenceFollowsStoredValue(t *testing.T) {
	saveBackground(t)
	t.Setenv("TASKDECK_TUI_THEME", "")

	applyThemePreference(true)
	if !lipgloss.HasDarkBackground() {
		t.Fatal("dark preference not applied")
	}
	applyThemePreference(false)
	if lipgloss.HasDarkBackground() {
		t.Fatal("light preference not applied")
	}
}

func TestApplyThemePreferenceEnvOverrideWins(t *testing.T) {
	saveBackground(t)

	t.Setenv("TASKDECK_TUI_THEME", "light")
	applyThemePreference(true)
	if lipgloss.HasDarkBackground() {
		t.Fatal("env override to light lost against the stored preference")
	}

	t.Setenv("TASKDECK_TUI_THEME", "DARK")
	applyThemePreference(false)
	if !lipgloss.HasDarkBackground() {
		t.Fatal("env override to dark lost against the stored preference")
	}

	// Unrecognized values fall through to the stored preference.
	t.Setenv("TASKDECK_TUI_THEME", "solarized")
	applyThemePreference(true)
	if !lipgloss.HasDarkBackground() {
		t.Fatal("unknown override value should fall back to the preference")
	}
}
