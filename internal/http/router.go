package http

import (
	"net/http"

	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/metrics"
	"perf-analytics/internal/stores"
	"perf-analytics/internal/tasks"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the run-status router.
// reportStore may be nil when reports are not persisted.
func NewRouter(tracker *runs.Tracker, populationService tasks.PopulationService, reportStore stores.ReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, tracker, httpLogger)

	// Routes
	router.Get("/status", errorHandlingAdapter(NewRunStatusHandler(tracker)))
	router.Get("/tasks/status", errorHandlingAdapter(NewQueueStatusHandler(populationService)))
	if reportStore != nil {
		router.Get("/reports/{job}/{runID}", errorHandlingAdapter(NewReportHandler(reportStore)))
	}
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
