package http

import (
	"perf-analytics/internal/shared/metrics"
)

var (
	// metricHTTPRequestsTotal counts status listener responses by route pattern.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"route", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"route"},
	)
)
