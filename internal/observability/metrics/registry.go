// Package metrics provides centralized Prometheus metrics for the tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Business metrics track tracker-specific operations
var (
	// subjectsCreatedTotal counts investigation subjects created
	subjectsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subjects_created_total",
			Help: "Total number of investigation subjects created",
		},
	)

	// findingsCreatedTotal counts findings documented, by type
	findingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "findings_created_total",
			Help: "Total number of findings documented",
		},
		[]string{"finding_type"},
	)

	// watchlistRejectionsTotal counts inserts rejected by the 10-record cap
	watchlistRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlist_rejections_total",
			Help: "Total number of watch-list inserts rejected by the capacity cap",
		},
		[]string{"list"},
	)

	// searchBundlesTotal counts generated search-link bundles
	searchBundlesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_bundles_generated_total",
			Help: "Total number of search URL bundles generated",
		},
	)
)
