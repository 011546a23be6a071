package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide JSON logger tagged with the service name.
// Debug level is for local and dev; staging and production stay at info.
func New(env, service string) *slog.Logger {
	level := slog.LevelInfo
	if env == "local" || env == "dev" {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", service)
}
