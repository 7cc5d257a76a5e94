package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func runPrefs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newPrefsCmd(&App{Format: "json"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrefsDarkModePersists(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())

	out, err := runPrefs(t, "dark-mode", "on")
	if err != nil {
		t.Fatalf("dark-mode on: %v", err)
	}
	var got prefsOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output was not JSON: %v", err)
	}
	if !got.DarkMode {
		t.Fatal("dark-mode on did not report darkMode=true")
	}

	// A fresh command run sees the persisted value.
	out, err = runPrefs(t, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output was not JSON: %v", err)
	}
	if !got.DarkMode {
		t.Fatal("dark mode did not persist across invocations")
	}

	if _, err := runPrefs(t, "dark-mode", "off"); err != nil {
		t.Fatalf("dark-mode off: %v", err)
	}
	out, _ = runPrefs(t, "show")
	_ = json.Unmarshal([]byte(out), &got)
	if got.DarkMode {
		t.Fatal("dark mode off did not persist")
	}
}

func TestPrefsDarkModeRejectsUnknownValue(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())

	if _, err := runPrefs(t, "dark-mode", "maybe"); err == nil {
		t.Fatal("unknown value accepted")
	}
}
