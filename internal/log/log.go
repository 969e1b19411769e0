// Package log builds the process logger. Diagnostics always go to stderr;
// stdout is reserved for extracted lines.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"slice/internal/config"
)

// New creates a logger configured from cfg, writing to stderr.
func New(cfg config.Config) zerolog.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter creates a logger configured from cfg that writes to w.
func NewWithWriter(w io.Writer, cfg config.Config) zerolog.Logger {
	out := w
	if !strings.EqualFold(cfg.LogFormat, "json") {
		out = zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}
	}
	return zerolog.New(out).Level(parseLevel(cfg.LogLevel)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
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
