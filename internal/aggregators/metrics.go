package aggregators

import (
	"perf-analytics/internal/shared/metrics"
)

// metricRecordsScannedTotal counts source records read by an aggregation job.
var (
	metricRecordsScannedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_scanned_total",
		},
		[]string{metrics.FieldJobName},
	)

	// metricLookupMissingTotal counts watched metrics that could not be bucketed.
	//
	// The reason label is one of:
	//   - "missing": the field is absent from the record
	//   - "not_numeric": the field holds something other than a number
	//   - "non_finite": the field is NaN or infinite
	//   - "invalid_mode": the audit's form factor is not mobile, desktop or none
	metricLookupMissingTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "metric_lookup_missing_total",
		},
		[]string{metrics.FieldJobName, "metric", "reason"},
	)
)
