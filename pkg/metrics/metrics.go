// Package metrics exposes Prometheus collectors for wallet operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operations records dispatcher outcomes.
type Operations struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewOperations registers the operation collectors on reg.
func NewOperations(reg prometheus.Registerer) *Operations {
	factory := promauto.With(reg)
	return &Operations{
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "walletbot",
				Name:      "operations_total",
				Help:      "Wallet operations dispatched, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "walletbot",
				Name:      "operation_duration_seconds",
				Help:      "Latency of wallet API calls, by kind and outcome",
				Buckets: []float64{
					0.01, 0.02, 0.05, 0.1, 0.2, 0.3,
					0.5, 0.8, 1.2, 2, 3, 5, 10,
				},
			},
			[]string{"kind", "outcome"},
		),
	}
}

// Reject counts an operation that was refused before reaching the wallet API.
// No latency is recorded.
func (o *Operations) Reject(kind, outcome string) {
	if o == nil {
		return
	}
	o.total.WithLabelValues(kind, outcome).Inc()
}

// Observe counts one operation and records how long it took.
func (o *Operations) Observe(kind, outcome string, elapsed time.Duration) {
	if o == nil {
		return
	}
	o.total.WithLabelValues(kind, outcome).Inc()
	o.duration.WithLabelValues(kind, outcome).Observe(elapsed.Seconds())
}
