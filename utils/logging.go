package utils

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// NewLogger builds a zerolog logger writing to stdout. Console output is
// human friendly; otherwise one JSON object per line is written.
func NewLogger(level string, console bool) zerolog.Logger {
	return NewLoggerTo(os.Stdout, level, console)
}

// NewLoggerTo is NewLogger with an explicit sink
func NewLoggerTo(w io.Writer, level string, console bool) zerolog.Logger {
	out := w
	if console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level; unknown names mean info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
