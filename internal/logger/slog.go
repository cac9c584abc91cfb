package logger

import (
	"io"
	"log/slog"
)

// Setup installs the default slog logger. Debug records are emitted only
// when verbose is set; otherwise only warnings and errors reach w.
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
