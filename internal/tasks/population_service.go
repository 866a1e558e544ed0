package tasks

import (
	"context"
	"time"

	"perf-analytics/internal/classifiers"
	"perf-analytics/internal/models"
	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/svcerrors"
	"perf-analytics/internal/stores"
)

const JobPopulate = "tasks_populate"

// PopulateResult summarises one population run.
//   - Scanned: page views read from pv_log
//   - Created: tasks that were not queued before this run
//   - Matched: tasks that were already queued
//   - Skipped: tasks left out because they already have a finished audit
type PopulateResult struct {
	RunID   string `json:"runId"`
	Scanned int64  `json:"scanned"`
	Created int64  `json:"created"`
	Matched int64  `json:"matched"`
	Skipped int64  `json:"skipped"`
}

// QueueStatus is the size of both halves of the audit queue.
type QueueStatus struct {
	Unfinished int64 `json:"unfinished"`
	Finished   int64 `json:"finished"`
}

//go:generate mockgen -source=population_service.go -destination=./mocks/population_service_mock.go -package=mocks
type PopulationService interface {
	// Populate queues one audit task per distinct (normalized URL, mode) seen in pv_log.
	// Running it again over the same page views queues nothing new.
	Populate(ctx context.Context, runID string) (*PopulateResult, *svcerrors.ServiceError)
	Status(ctx context.Context) (*QueueStatus, *svcerrors.ServiceError)
}

type populationService struct {
	pageViewStore stores.PageViewStore
	taskStore     stores.TaskStore
	classifier    classifiers.Classifier
	tracker       *runs.Tracker
	skipFinished  bool
	progressEvery int64
}

func NewPopulationService(
	pageViewStore stores.PageViewStore,
	taskStore stores.TaskStore,
	classifier classifiers.Classifier,
	tracker *runs.Tracker,
	skipFinished bool,
	progressEvery int,
) PopulationService {
	return &populationService{
		pageViewStore: pageViewStore,
		taskStore:     taskStore,
		classifier:    classifier,
		tracker:       tracker,
		skipFinished:  skipFinished,
		progressEvery: int64(progressEvery),
	}
}

func (s *populationService) Populate(ctx context.Context, runID string) (*PopulateResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	result := &PopulateResult{RunID: runID}

	s.tracker.Start(JobPopulate, runID, time.Now().UTC())
	defer s.tracker.Finish()

	logger.Info().Bool("skip_finished", s.skipFinished).Msg("started task population")
	err := s.pageViewStore.Stream(ctx, func(pageView *models.PageView) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.Scanned = s.tracker.Advance()
		if s.progressEvery > 0 && result.Scanned%s.progressEvery == 0 {
			logger.Info().Int64(loggers.FieldScanned, result.Scanned).Msg("population progress")
		}

		task := s.classifier.TaskKey(pageView)
		if s.skipFinished {
			finished, err := s.taskStore.IsFinished(ctx, task)
			if err != nil {
				return errInternalTaskStoreFailed(err)
			}
			if finished {
				result.Skipped++
				metricTaskUpsertedTotal.WithLabelValues(resultSkipped).Inc()
				return nil
			}
		}

		created, err := s.taskStore.Upsert(ctx, task)
		if err != nil {
			return errInternalTaskStoreFailed(err)
		}
		if created {
			result.Created++
			metricTaskUpsertedTotal.WithLabelValues(resultCreated).Inc()
			logger.Debug().Str("requested_url", task.RequestedURL).Str("mode", task.Mode.String()).Msg("queued task")
		} else {
			result.Matched++
			metricTaskUpsertedTotal.WithLabelValues(resultMatched).Inc()
		}
		return nil
	})
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return nil, svcErr
		}
		return nil, errInternalPageViewStoreFailed(err)
	}

	logger.Info().
		Int64(loggers.FieldScanned, result.Scanned).
		Int64("created", result.Created).
		Int64("matched", result.Matched).
		Int64("skipped", result.Skipped).
		Msg("finished task population")
	return result, nil
}

func (s *populationService) Status(ctx context.Context) (*QueueStatus, *svcerrors.ServiceError) {
	unfinished, err := s.taskStore.CountUnfinished(ctx)
	if err != nil {
		return nil, errInternalTaskStoreFailed(err)
	}
	finished, err := s.taskStore.CountFinished(ctx)
	if err != nil {
		return nil, errInternalTaskStoreFailed(err)
	}
	return &QueueStatus{Unfinished: unfinished, Finished: finished}, nil
}
