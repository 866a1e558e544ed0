package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"perf-analytics/internal/models"
	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/svcerrors"
	"perf-analytics/internal/stores"
	storemocks "perf-analytics/internal/stores/mocks"
	"perf-analytics/internal/tasks"
	taskmocks "perf-analytics/internal/tasks/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, tracker *runs.Tracker, populationService tasks.PopulationService, reportStore stores.ReportStore) http.Handler {
	t.Helper()
	logger, err := loggers.NewWithWriter("info", io.Discard)
	require.NoError(t, err)
	return NewRouter(tracker, populationService, reportStore, logger)
}

func TestRouter_GetStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := runs.NewTracker()
	startedAt := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)
	tracker.Start("fmp", "01RUN", startedAt)
	tracker.Advance()
	tracker.Advance()

	router := newTestRouter(t, tracker, taskmocks.NewMockPopulationService(ctrl), nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var snap runs.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.Equal(t, "fmp", snap.Job)
	assert.Equal(t, "01RUN", snap.RunID)
	assert.Equal(t, int64(2), snap.Processed)
	assert.True(t, snap.Running)
	assert.True(t, startedAt.Equal(snap.StartedAt))
}

func TestRouter_GetQueueStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	populationService := taskmocks.NewMockPopulationService(ctrl)
	populationService.EXPECT().Status(gomock.Any()).Return(&tasks.QueueStatus{Unfinished: 3, Finished: 9}, nil)

	router := newTestRouter(t, runs.NewTracker(), populationService, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks/status", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"unfinished":3,"finished":9}`, rr.Body.String())
}

func TestRouter_GetQueueStatus_InternalError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	populationService := taskmocks.NewMockPopulationService(ctrl)
	populationService.EXPECT().Status(gomock.Any()).Return(nil, svcerrors.NewInternalError("TSK_9001", errors.New("timeout")))

	router := newTestRouter(t, runs.NewTracker(), populationService, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks/status", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "TSK_9001", errorResponse.ErrorCode)
}

func TestRouter_GetReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hist := models.NewHistogram()
	hist.Observe(models.ModeMobile, "fmp", 400)
	reportStore := storemocks.NewMockReportStore(ctrl)
	reportStore.EXPECT().
		Get(gomock.Any(), "fmp", "01RUN").
		Return(&models.HistogramReport{Job: "fmp", RunID: "01RUN", Records: 1, Histogram: hist}, nil)

	router := newTestRouter(t, runs.NewTracker(), taskmocks.NewMockPopulationService(ctrl), reportStore)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/fmp/01RUN", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var report models.HistogramReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, int64(1), report.Records)
	assert.Equal(t, models.FrequencyTable{400: 1}, report.Histogram.Table(models.ModeMobile, "fmp"))
}

func TestRouter_GetReport_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportStore := storemocks.NewMockReportStore(ctrl)
	reportStore.EXPECT().Get(gomock.Any(), "timing", "missing").Return(nil, stores.ErrReportNotFound)

	router := newTestRouter(t, runs.NewTracker(), taskmocks.NewMockPopulationService(ctrl), reportStore)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/timing/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "not_found", errorResponse.ErrorCategory)
	assert.Equal(t, "HTTP_4040", errorResponse.ErrorCode)
}

func TestRouter_GetReport_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportStore := storemocks.NewMockReportStore(ctrl)
	reportStore.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk gone"))

	router := newTestRouter(t, runs.NewTracker(), taskmocks.NewMockPopulationService(ctrl), reportStore)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/fmp/01RUN", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRouter_ReportsRouteDisabledWithoutStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, runs.NewTracker(), taskmocks.NewMockPopulationService(ctrl), nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/fmp/01RUN", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_GetMetrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestRouter(t, runs.NewTracker(), taskmocks.NewMockPopulationService(ctrl), nil)

	// one request so the http counters have a sample
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "perf_analytics_http_requests_total")
}
