package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "supplynet"

// Metrics are the Prometheus collectors of a Service.
type Metrics struct {
	// OperationsTotal counts calls by operation and result (success, error).
	OperationsTotal *prometheus.CounterVec
	// OperationDuration observes call latency by operation.
	OperationDuration *prometheus.HistogramVec
	// ResilienceFallbackTotal counts reports whose resilience fell back to
	// the default score.
	ResilienceFallbackTotal prometheus.Counter
}

// newMetrics builds the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OperationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "operations_total",
				Help:      "Total number of analysis operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		OperationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of analysis operations",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"operation"},
		),
		ResilienceFallbackTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "resilience_fallback_total",
				Help:      "Number of network reports that used the fallback resilience score",
			},
		),
	}
}
