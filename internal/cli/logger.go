package cli

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/term"
)

// NewLogger creates the diagnostic logger. When w is a terminal it uses
// slog.TextHandler for human-readable output, otherwise slog.JSONHandler.
// level is a slog level name such as "debug" or "warn".
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	options := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if f, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler), nil
}
