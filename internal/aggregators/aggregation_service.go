package aggregators

import (
	"context"
	"time"

	"perf-analytics/internal/models"
	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/svcerrors"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Run streams the job's source once and returns the finished histogram.
	// A source error aborts the run; nothing is resumed.
	Run(ctx context.Context, runID string, job Job) (*models.HistogramReport, *svcerrors.ServiceError)
}

type aggregationService struct {
	aggregator    HistogramAggregator
	tracker       *runs.Tracker
	progressEvery int64
	now           func() time.Time
}

func NewAggregationService(aggregator HistogramAggregator, tracker *runs.Tracker, progressEvery int) AggregationService {
	return &aggregationService{
		aggregator:    aggregator,
		tracker:       tracker,
		progressEvery: int64(progressEvery),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *aggregationService) Run(ctx context.Context, runID string, job Job) (*models.HistogramReport, *svcerrors.ServiceError) {
	for _, spec := range job.Metrics() {
		if spec.Gap <= 0 {
			return nil, errInvalidArgumentMetricGap(spec)
		}
	}

	logger := loggers.Ctx(ctx)
	report := &models.HistogramReport{
		Job:       job.Name(),
		RunID:     runID,
		Source:    job.Source(),
		StartedAt: s.now(),
		Histogram: models.NewHistogram(),
	}
	s.tracker.Start(job.Name(), runID, report.StartedAt)
	defer s.tracker.Finish()

	logger.Info().Str(loggers.FieldCollection, job.Source()).Msg("started aggregation")
	err := job.Scan(ctx, func(sample *Sample) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.SkippedLookups += int64(s.aggregator.Accumulate(ctx, report.Histogram, job.Name(), sample))
		report.Records = s.tracker.Advance()
		metricRecordsScannedTotal.WithLabelValues(job.Name()).Inc()

		if s.progressEvery > 0 && report.Records%s.progressEvery == 0 {
			logger.Info().Int64(loggers.FieldScanned, report.Records).Msg("aggregation progress")
		}
		return nil
	})
	if err != nil {
		return nil, errInternalSourceStoreFailed(job.Source(), err)
	}
	report.FinishedAt = s.now()

	logger.Info().
		Int64(loggers.FieldScanned, report.Records).
		Int64("skipped_lookups", report.SkippedLookups).
		Int64("bucketed", report.Histogram.Total()).
		Msg("finished aggregation")
	return report, nil
}
