// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "design_requests_total",
			Help: "Cumulative number of accepted design-request submissions.",
		})

	ValidationRejectsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "design_request_validation_rejects_total",
			Help: "Cumulative number of submissions rejected by validation.",
		})

	LedgerErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "design_request_ledger_errors_total",
			Help: "Cumulative number of fatal local-ledger write failures.",
		})

	StageErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "design_request_stage_errors_total",
			Help: "Cumulative number of non-fatal pipeline stage failures.",
		},
		[]string{"stage"}, // render, publish, mirror
	)
)

func init() {
	prometheus.MustRegister(
		SubmissionsTotal,
		ValidationRejectsTotal,
		LedgerErrorsTotal,
		StageErrorsTotal,
	)
}
