package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug level logging when set to any non-empty value.
const DebugEnv = "POMODORO_DEBUG"

// Level returns the log level selected by the environment.
func Level() slog.Level {
	if os.Getenv(DebugEnv) != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New returns a text logger writing to w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level()}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
