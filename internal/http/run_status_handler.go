package http

import (
	"net/http"

	"perf-analytics/internal/runs"
)

type runStatusHandler struct {
	tracker *runs.Tracker
}

func NewRunStatusHandler(tracker *runs.Tracker) AppHttpHandler {
	return &runStatusHandler{tracker: tracker}
}

// Handle serves GET /status with a snapshot of the run in progress.
func (h *runStatusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, h.tracker.Snapshot())
}
