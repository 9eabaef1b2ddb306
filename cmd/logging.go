package cmd

import (
	"log/slog"
	"os"
)

// setupLogger builds the stderr logger for the inspect command, keeping
// stdout free for the rendered report.
func setupLogger(verbose, quiet bool) *slog.Logger {
	var level slog.Level

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
