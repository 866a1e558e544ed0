package http

import (
	"net/http"

	"perf-analytics/internal/tasks"
)

type queueStatusHandler struct {
	populationService tasks.PopulationService
}

func NewQueueStatusHandler(populationService tasks.PopulationService) AppHttpHandler {
	return &queueStatusHandler{populationService: populationService}
}

// Handle serves GET /tasks/status with the audit queue sizes.
func (h *queueStatusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	status, svcErr := h.populationService.Status(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, status)
}
