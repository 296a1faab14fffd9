// Package metrics defines and registers all custom Prometheus metrics for
// the employee review system. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "review_system"

// SignInsTotal counts successful sign-ins.
var SignInsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of successful sign-ins.",
	},
)

// SignInFailuresTotal counts failed sign-in attempts.
// Label:
//   - reason: "not_found", "bad_password", or "system"
var SignInFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_in_failures_total",
		Help:      "Total number of failed sign-in attempts, by reason.",
	},
	[]string{"reason"},
)

// UsersCreatedTotal counts user records created through sign-up or
// admin-initiated employee creation.
// Label:
//   - role: "admin" or "employee"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// EmployeesUpdatedTotal counts successful employee profile updates.
var EmployeesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_updated_total",
		Help:      "Total number of employee records updated.",
	},
)

// EmployeesDeletedTotal counts employee records removed by admins.
var EmployeesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_deleted_total",
		Help:      "Total number of employee records deleted.",
	},
)

// ReviewsCreatedTotal counts submitted reviews.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews submitted.",
	},
)

// ReviewsCascadeDeletedTotal counts reviews removed by the cascade that
// runs when a user is deleted.
// Label:
//   - reference: "recipient" or "reviewer" — which side of the review
//     named the deleted user
var ReviewsCascadeDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_cascade_deleted_total",
		Help:      "Total number of reviews removed by user-deletion cascades.",
	},
	[]string{"reference"},
)
