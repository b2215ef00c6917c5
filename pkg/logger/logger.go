package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted stdout logger with optional context
// extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(Decorate(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Used as the default wherever logging is optional.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
