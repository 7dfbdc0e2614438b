package loop

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option is a function that configures a Host
type Option func(*Host)

// WithLog sets the logger for the host
var WithLog = func(log *slog.Logger) Option {
	return func(h *Host) {
		h.log = log
	}
}

// WithMetrics enables per-agent counters, registered with reg
var WithMetrics = func(reg prometheus.Registerer) Option {
	return func(h *Host) {
		h.metrics = newMetrics(reg)
	}
}

// NullWriter is a writer that discards all data
type NullWriter struct{}

func (NullWriter) Write([]byte) (int, error) { return 0, nil }

// NullLogger creates a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(NullWriter{}, nil))
}
