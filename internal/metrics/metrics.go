// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for SplitComputations.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// SplitComputations counts calculator runs by strategy and outcome. A
// rejected run is labelled with the validation kind, not OutcomeRejected,
// when one is known.
var SplitComputations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "expensesplit",
	Name:      "split_computations_total",
	Help:      "Total split computations by strategy and outcome.",
}, []string{"strategy", "outcome"})

// ExpensesWritten counts persisted expenses by operation (create, update, delete).
var ExpensesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "expensesplit",
	Subsystem: "expense",
	Name:      "writes_total",
	Help:      "Total expense writes by operation.",
}, []string{"op"})

// HTTPRequestDuration tracks request latency by route pattern and status.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "expensesplit",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route and status.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})
