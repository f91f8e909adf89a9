// Package metrics defines and registers all custom Prometheus metrics for the
// expense system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init, so
// importing this package from any wired component is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expense"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts successfully registered.",
	},
)

// TokenRefreshesTotal counts refresh-token exchanges.
// Label:
//   - result: "success", "invalid", or "error"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// ── Posting metrics ───────────────────────────────────────────────────────────

// PostingsProcessedTotal counts standard expenses posted as transactions.
// Label:
//   - frequency: the expense recurrence ("Daily", "Weekly", "Monthly", "Yearly")
var PostingsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postings_processed_total",
		Help:      "Total number of standard expenses successfully posted.",
	},
	[]string{"frequency"},
)

// PostingsErrorsTotal counts postings that failed.
// Label:
//   - reason: short description of the failure (e.g. "post_failed")
var PostingsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postings_errors_total",
		Help:      "Total number of standard expense postings that failed.",
	},
	[]string{"reason"},
)

// PostingQueueDepth tracks the number of expenses waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var PostingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "posting_queue_depth",
		Help:      "Current number of expenses pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
