// Package logging builds the structured logger shared by both program
// variants.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured slog.Logger writing to stderr at the given level.
func New(level slog.Leveler) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
