// Package logging builds the site's slog logger from the app options.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/maxburleigh/portfolio/internal/config"
)

const envProduction = "production"

// New returns a logger writing to out at the configured level. Production
// emits JSON records; every other environment emits text with source
// locations. Unknown levels fall back to info.
func New(opts *config.AppOptions, out io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.LogLevel),
		AddSource: opts.Env != envProduction,
	}

	var handler slog.Handler
	if opts.Env == envProduction {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(handler).With("env", opts.Env)
}

// SetDefault builds a logger with New and installs it as the slog default.
func SetDefault(opts *config.AppOptions, out io.Writer) *slog.Logger {
	logger := New(opts, out)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel accepts the slog level names, case-insensitively and with
// optional offsets such as "warn+2". "warning" is an alias of "warn".
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
