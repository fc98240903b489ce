// Package metrics defines and registers the custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - route: the matched route path (e.g. "/api/jobs")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429 by the rate limiter.",
	},
	[]string{"route"},
)

// AuthFailuresTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "missing_token", "invalid_token", or "not_admin"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// ValidationFailuresTotal counts payloads rejected by schema validation.
// Label:
//   - route: the matched route path
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of payloads rejected by field validation.",
	},
	[]string{"route"},
)

// JobsCreatedTotal counts successfully created job listings.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job listings created.",
	},
)

// UsersDeletedTotal counts users removed through the admin moderation path.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted by the admin.",
	},
)
