package tasks

import (
	"perf-analytics/internal/shared/metrics"
)

const (
	resultCreated = "created"
	resultMatched = "matched"
	resultSkipped = "skipped"
)

// metricTaskUpsertedTotal counts page views by what happened to their task.
//   - created: a new task was queued
//   - matched: the task was already queued, nothing changed
//   - skipped: the task already has a finished audit
var metricTaskUpsertedTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubTasks,
		Name:      "task_upserted_total",
	},
	[]string{"result"},
)
