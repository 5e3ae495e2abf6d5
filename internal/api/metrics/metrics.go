// Package metrics defines all custom Prometheus metrics for the exercise
// tracker API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

// UsersCreatedTotal counts successfully created users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// ExercisesLoggedTotal counts successfully logged exercises.
var ExercisesLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_logged_total",
		Help:      "Total number of exercises logged.",
	},
)

// LogQueriesTotal counts log queries that completed successfully.
var LogQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_queries_total",
		Help:      "Total number of exercise log queries served.",
	},
)

// LogCacheTotal counts log cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to MongoDB)
var LogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_cache_total",
		Help:      "Total number of log cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LogQueryDuration measures how long a log query takes end-to-end in the
// service layer, including the cache or store fetch and filtering.
var LogQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "log_query_duration_seconds",
		Help:      "Duration of exercise log queries from lookup to response mapping.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
