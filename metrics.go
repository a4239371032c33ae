package sexpcalc

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts evaluations by strategy and outcome.
type Metrics struct {
	evaluations *prometheus.CounterVec
	steps       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg when it
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sexpcalc_evaluations_total",
				Help: "Total number of evaluated expressions",
			},
			[]string{"strategy", "outcome"},
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sexpcalc_reduction_steps",
				Help:    "Reductions performed per successful evaluation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"strategy"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.evaluations, m.steps)
	}
	return m
}

func (m *Metrics) observe(s Strategy, steps int, err error) {
	switch {
	case err == nil:
		m.evaluations.WithLabelValues(s.String(), "ok").Inc()
		m.steps.WithLabelValues(s.String()).Observe(float64(steps))
	case errors.Is(err, ErrLimitExceeded):
		m.evaluations.WithLabelValues(s.String(), "limit").Inc()
	default:
		m.evaluations.WithLabelValues(s.String(), "invalid").Inc()
	}
}
