package log

import (
	"log/slog"
	"os"
)

// New returns the process logger: JSON output when running inside a
// cluster, human-readable text everywhere else.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	var handler slog.Handler
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
