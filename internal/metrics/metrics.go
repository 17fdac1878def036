// Package metrics defines the Prometheus metrics for the school sync client.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "schoolclient"

// RequestsTotal counts service calls by method and outcome.
// Labels:
//   - method: HTTP method of the request
//   - status: numeric status code, or "error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of requests sent to the school service.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures the round-trip time of service calls.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of school service round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// RecordsDroppedTotal counts wire records skipped during a load because no
// identifier could be resolved.
// Label:
//   - entity: "post", "professor", or "student"
var RecordsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_dropped_total",
		Help:      "Total number of wire records dropped for lacking an id.",
	},
	[]string{"entity"},
)

// CacheSize tracks the current number of cached records per entity kind.
var CacheSize = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_size",
		Help:      "Current number of records held in each entity cache.",
	},
	[]string{"entity"},
)

// SessionEvictionsTotal counts forced session evictions caused by a 401.
var SessionEvictionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_evictions_total",
		Help:      "Total number of sessions evicted after an authorization failure.",
	},
)
