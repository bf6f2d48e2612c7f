// Package observability provides domain-level Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InjectionLogins counts logins that succeeded via the simulated
	// SQL-injection bypass.
	InjectionLogins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vulnsocial_injection_logins_total",
		Help: "Total number of logins through the simulated injection bypass",
	})

	// FailedLogins counts ordinary credential mismatches.
	FailedLogins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vulnsocial_failed_logins_total",
		Help: "Total number of failed login attempts",
	})

	// PostsCreated counts accepted post submissions.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vulnsocial_posts_created_total",
		Help: "Total number of posts created",
	})

	// SearchErrors counts search predicate compile/eval failures, which is
	// how injection attempts against the search box usually show up.
	SearchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vulnsocial_search_errors_total",
		Help: "Total number of search predicate evaluation errors",
	})

	// AdminDenied counts admin actions refused for lack of the admin role.
	AdminDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vulnsocial_admin_denied_total",
		Help: "Total number of admin actions denied by the role check",
	}, []string{"action"})
)
