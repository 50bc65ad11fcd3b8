package backend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanboard_backend_requests_total",
		Help: "Total number of calls to the loan backend.",
	}, []string{"operation", "outcome"})

	backendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loanboard_backend_request_duration_seconds",
		Help:    "Duration of calls to the loan backend in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

func observeBackendCall(op string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	backendRequestsTotal.WithLabelValues(op, outcome).Inc()
	backendRequestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}
