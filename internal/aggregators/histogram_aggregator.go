package aggregators

import (
	"context"

	"perf-analytics/internal/buckets"
	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/loggers"
)

// MissingMetricPolicy decides what happens to a lookup with no usable value.
type MissingMetricPolicy string

const (
	PolicySkip    MissingMetricPolicy = "skip"
	PolicyUnknown MissingMetricPolicy = "unknown"
)

//go:generate mockgen -source=histogram_aggregator.go -destination=./mocks/histogram_aggregator_mock.go -package=mocks
type HistogramAggregator interface {
	// Accumulate folds sample into hist and returns how many of its lookups
	// had no usable value.
	Accumulate(ctx context.Context, hist *models.Histogram, job string, sample *Sample) int
}

type histogramAggregator struct {
	policy MissingMetricPolicy
}

func NewHistogramAggregator(policy MissingMetricPolicy) HistogramAggregator {
	return &histogramAggregator{policy: policy}
}

func (a *histogramAggregator) Accumulate(ctx context.Context, hist *models.Histogram, job string, sample *Sample) int {
	missing := 0
	for _, lookup := range sample.Lookups {
		if lookup.Present && sample.Mode.Valid() {
			hist.Observe(sample.Mode, lookup.Metric, buckets.CeilingBucket(lookup.Value, lookup.Gap))
			continue
		}

		reason := lookup.Reason
		if !sample.Mode.Valid() {
			reason = models.ReasonInvalidMode
		}
		missing++
		a.recordMissing(ctx, job, sample.RecordID, lookup.Metric, reason)

		// an invalid mode has no slot to count into
		if a.policy == PolicyUnknown && sample.Mode.Valid() {
			hist.ObserveUnknown(sample.Mode, lookup.Metric)
		}
	}
	return missing
}

func (a *histogramAggregator) recordMissing(ctx context.Context, job, recordID, metric string, reason models.MissingReason) {
	loggers.Ctx(ctx).Warn().
		Str(loggers.FieldRecordID, recordID).
		Str(loggers.FieldMetric, metric).
		Str(loggers.FieldReason, string(reason)).
		Msg("metric has no usable value")
	metricLookupMissingTotal.WithLabelValues(job, metric, string(reason)).Inc()
}
