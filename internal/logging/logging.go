// Package logging builds the process logger.
//
// CLI commands log to stderr through a console writer. The TUI owns the
// terminal, so it only logs when TASKDECK_LOG points at a file and discards
// otherwise.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ForCLI returns a console logger on stderr. TASKDECK_LOG_LEVEL overrides
// the default warn level (debug|info|warn|error).
func ForCLI() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(levelFromEnv()).With().Timestamp().Logger()
}

// ForTUI returns a file logger when TASKDECK_LOG is set, and a no-op logger
// otherwise. The returned closer is safe to call in either case.
func ForTUI() (zerolog.Logger, func() error) {
	path := strings.TrimSpace(os.Getenv("TASKDECK_LOG"))
	if path == "" {
		return zerolog.Nop(), func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Logging is best-effort; never block startup on it.
		return zerolog.Nop(), func() error { return nil }
	}
	logger := zerolog.New(f).Level(levelFromEnv()).With().Timestamp().Logger()
	return logger, f.Close
}

// New wraps an arbitrary writer, for tests.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKDECK_LOG_LEVEL"))) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
