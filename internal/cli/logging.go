package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w at debug level when verbose
// is set, and a logger that discards everything otherwise. Diagnostics never
// go to stdout, which belongs to the calculator output.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
