// Package metrics defines and registers all custom Prometheus metrics for the
// water-quality API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "waterquality"

// ReadingsSubmittedTotal counts readings stored successfully.
// Label:
//   - status: the derived quality status ("excellent", "good", "fair", "poor")
var ReadingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_submitted_total",
		Help:      "Total number of water-quality readings stored, by derived status.",
	},
	[]string{"status"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AnalyticsCacheTotal counts aggregation cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (computed from the database)
var AnalyticsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_cache_total",
		Help:      "Total number of analytics cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// AnalyticsQueryDuration measures how long one aggregation request takes,
// including cache lookups and database queries.
// Label:
//   - endpoint: the aggregate served (e.g. "statistics", "trends")
var AnalyticsQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analytics_query_duration_seconds",
		Help:      "Duration of analytics requests from handler entry to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint"},
)
