// Package metrics provides Prometheus metrics for the explorer API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "explorer_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Dataset metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"status"},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "explorer_dataset_records",
			Help: "Number of records in the loaded dataset",
		},
	)

	// Selection metrics
	SelectionMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "explorer_selection_misses_total",
			Help: "Total number of item lookups outside the candidate set",
		},
	)
)
