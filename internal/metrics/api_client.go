package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of chainweb API operations, retries included.",
	}, []string{"operation", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chainweb API operations, retries included.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"operation", "status"})
	apiRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "retries_total",
		Help:      "Count of retried chainweb API attempts.",
	}, []string{"operation"})
)

// APIClient tracks chainweb API calls.
type APIClient struct{}

// NewAPIClient creates an APIClient metrics collector.
func NewAPIClient() *APIClient {
	return &APIClient{}
}

// Observe records the outcome and duration of an operation.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	apiRequestsTotal.WithLabelValues(operation, s).Inc()
	apiRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}

// ObserveRetry counts an attempt that failed transiently and will be retried.
func (m APIClient) ObserveRetry(operation string) {
	apiRetriesTotal.WithLabelValues(operation).Inc()
}
