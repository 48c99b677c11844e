package app

import (
	"io"
	"log/slog"
)

// logLevels maps the CLI's validated level names to slog levels. Anything
// else falls back to info, the CLI default.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the logger a run writes to. Each App gets its own
// instance so tests can capture a run's log output in isolation; the global
// logger is never touched. Format "json" selects the JSON handler, anything
// else the text handler.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
