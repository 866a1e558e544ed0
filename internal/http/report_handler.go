package http

import (
	"errors"
	"net/http"

	"perf-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

type reportHandler struct {
	reportStore stores.ReportStore
}

func NewReportHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &reportHandler{reportStore: reportStore}
}

// Handle serves GET /reports/{job}/{runID} from the persisted reports.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	job := chi.URLParam(r, "job")
	runID := chi.URLParam(r, "runID")

	report, err := h.reportStore.Get(r.Context(), job, runID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return errNotFoundReport(job, runID)
		}
		return errInternalReportStoreFailed(err)
	}
	return writeJSON(w, http.StatusOK, report)
}
