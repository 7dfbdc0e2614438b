package loop

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts per-agent activity.
type Metrics struct {
	transitions *prometheus.CounterVec
	sinkErrors  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "automat",
				Subsystem: "loop",
				Name:      "transitions_total",
				Help:      "Total number of machine transitions per agent",
			},
			[]string{"agent"},
		),
		sinkErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "automat",
				Subsystem: "loop",
				Name:      "sink_errors_total",
				Help:      "Total number of sink failures per agent",
			},
			[]string{"agent"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.transitions, m.sinkErrors)
	}
	return m
}
