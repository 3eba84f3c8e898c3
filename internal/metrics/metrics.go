// Package metrics defines the Prometheus collectors of the ledger service.
// All collectors are registered with the default registry on import and are
// exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gigledger"

// PaymentsTotal counts job payment attempts.
// Label:
//   - result: "paid", "not_found", "already_paid", "forbidden", "insufficient_balance", "transient" or "error"
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of job payment attempts, by result.",
	},
	[]string{"result"},
)

// TransferredAmountTotal is the sum of all committed job payments.
var TransferredAmountTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transferred_amount_total",
		Help:      "Total amount moved from clients to contractors by committed payments.",
	},
)

// DepositsTotal counts deposit attempts.
// Label:
//   - result: "deposited", "invalid_amount", "forbidden", "limit_exceeded", "transient" or "error"
var DepositsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposits_total",
		Help:      "Total number of deposit attempts, by result.",
	},
	[]string{"result"},
)

// TxRetriesTotal counts transaction attempts that were rolled back and retried.
// Label:
//   - isolation: "serializable" or "read_committed"
var TxRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tx_retries_total",
		Help:      "Total number of transaction retries caused by conflicts or lock timeouts.",
	},
	[]string{"isolation"},
)

// ReportCacheTotal counts report cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of report cache lookups, by result.",
	},
	[]string{"result"},
)

// ReportDuration measures how long a report query takes, cache included.
var ReportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of admin report queries.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"report"},
)
