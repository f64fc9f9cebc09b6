// Package cli implements the dicebear command-line interface.
//
// The CLI is built with cobra. Library packages log through log/slog; the CLI
// installs a charmbracelet/log handler as the slog default so that messages
// are timestamped and --verbose (-v) switches to debug level.
//
// # Commands
//
//   - avatar: download an avatar (optionally converting it)
//   - url: print the request URL without downloading
//   - schema: print the JSON schema of a style
//   - styles, formats: list the supported identifiers
//   - color: generate or validate colour specifications
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// installLogger makes l the handler behind the slog default logger.
func installLogger(l *log.Logger) {
	slog.SetDefault(slog.New(l))
}
