// Package metrics defines and registers all custom Prometheus metrics for the
// SkillStream API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry when the
// package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillstream"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "invalid_request" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", "invalid_request" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LegacyPasswordUpgradesTotal counts plaintext credentials re-hashed at login.
var LegacyPasswordUpgradesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "legacy_password_upgrades_total",
		Help:      "Total number of legacy plaintext passwords upgraded to bcrypt.",
	},
)

// AccessDeniedTotal counts requests rejected by a role check.
// Label:
//   - role: the role the route requires
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "access_denied_total",
		Help:      "Total number of requests denied for lacking the required role.",
	},
	[]string{"role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CourseMutationsTotal counts successful admin changes to the catalog.
// Label:
//   - operation: "create", "update" or "delete"
var CourseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_mutations_total",
		Help:      "Total number of successful course mutations, by operation.",
	},
	[]string{"operation"},
)

// CourseSearchesTotal counts catalog searches.
// Label:
//   - mode: "tag" for '#'-prefixed queries, "text" otherwise, "all" when blank
var CourseSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_searches_total",
		Help:      "Total number of catalog searches, by query mode.",
	},
	[]string{"mode"},
)

// ── Favourite metrics ─────────────────────────────────────────────────────────

// FavouriteMutationsTotal counts successful favourite changes.
// Label:
//   - operation: "add" or "remove"
var FavouriteMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favourite_mutations_total",
		Help:      "Total number of successful favourite mutations, by operation.",
	},
	[]string{"operation"},
)
