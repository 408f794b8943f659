// Package metrics defines and registers all custom Prometheus metrics
// for the client portal. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time;
// the echoprometheus handler on /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// AccountsProvisionedTotal counts successfully provisioned accounts.
// Label:
//   - role: "admin" or "client"
var AccountsProvisionedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_provisioned_total",
		Help:      "Total number of accounts provisioned, by role.",
	},
	[]string{"role"},
)

// ProvisioningErrorsTotal counts failed provisioning attempts.
// Label:
//   - reason: short failure class (e.g. "unauthorized", "identity_exists", "client_record")
var ProvisioningErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provisioning_errors_total",
		Help:      "Total number of failed provisioning attempts, by reason.",
	},
	[]string{"reason"},
)

// AccountDeletionsTotal counts completed account deletions.
var AccountDeletionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_deletions_total",
		Help:      "Total number of accounts deleted.",
	},
)

// EmailsSentTotal counts notification deliveries.
// Labels:
//   - provider: "Gmail SMTP" or "Simulation"
//   - result: "ok" or "error"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of email delivery attempts, by provider and result.",
	},
	[]string{"provider", "result"},
)
