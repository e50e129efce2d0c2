package app

import (
	"io"
	"log/slog"
)

// newLogger creates the per-invocation slog.Logger. Verbose invocations log
// at debug level; otherwise only warnings and errors surface. The logger is
// never set globally, keeping instances isolated for tests.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
