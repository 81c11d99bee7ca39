// Package metrics provides Prometheus metrics for the order form service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrderItemSubmissionsTotal tracks order item create/update submissions by outcome
	OrderItemSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderform",
			Subsystem: "orderitem",
			Name:      "submissions_total",
			Help:      "Total number of order item submissions by item type and outcome",
		},
		[]string{"order_item_type", "outcome"},
	)

	// ValidationFailuresTotal tracks local and remote validation failures
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderform",
			Subsystem: "orderitem",
			Name:      "validation_failures_total",
			Help:      "Total number of rejected submissions by validation source",
		},
		[]string{"order_item_type", "source"},
	)

	// APIRequestsTotal tracks outbound calls to the remote APIs
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderform",
			Subsystem: "api_client",
			Name:      "requests_total",
			Help:      "Total number of outbound API requests",
		},
		[]string{"method", "status_code"},
	)

	// APIRequestDuration tracks outbound API request duration
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orderform",
			Subsystem: "api_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound API requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)
)
