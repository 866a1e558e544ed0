package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"perf-analytics/internal/aggregators"
	"perf-analytics/internal/models"
	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/configs"
	"perf-analytics/internal/shared/filestorages"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/svcerrors"
	"perf-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(rootDir string) *configs.Config {
	return &configs.Config{
		Log:   configs.LogConfig{Level: "debug"},
		Mongo: configs.MongoConfig{URI: "mongodb://127.0.0.1:27017", Database: "v", CollectionPrefix: "xes_fed_bi_", ConnectTimeout: 1},
		Aggregation: configs.AggregationConfig{
			MissingMetricPolicy: "skip",
			DefaultGap:          400,
			AuditMetrics:        configs.DefaultAuditMetrics(),
		},
		Report:      configs.ReportConfig{Format: "json"},
		FileStorage: configs.FileStorageConfig{RootDir: rootDir},
	}
}

func newTestApp(t *testing.T, config *configs.Config, out io.Writer) *App {
	t.Helper()
	logger, err := loggers.NewWithWriter("debug", io.Discard)
	require.NoError(t, err)
	app, err := newWithLogger(config, out, logger)
	require.NoError(t, err)
	return app
}

func saveReport(t *testing.T, rootDir string, report *models.HistogramReport) {
	t.Helper()
	fileStorage, err := filestorages.NewFileStorage(rootDir)
	require.NoError(t, err)
	_, err = stores.NewReportStore(fileStorage).Put(context.Background(), report)
	require.NoError(t, err)
}

func TestNew_AssignsRunID(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, newTestConfig(""), io.Discard)
	b := newTestApp(t, newTestConfig(""), io.Discard)

	assert.Len(t, a.RunID(), 26)
	assert.NotEqual(t, a.RunID(), b.RunID())
	assert.Nil(t, a.reportStore, "no root dir means no persisted reports")
}

func TestApp_ShowAndListReports(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	hist := models.NewHistogram()
	hist.Observe(models.ModeDesktop, "tti", 800)
	saveReport(t, rootDir, &models.HistogramReport{Job: "timing", RunID: "01A", Records: 1, StartedAt: time.Now().UTC(), Histogram: hist})
	saveReport(t, rootDir, &models.HistogramReport{Job: "timing", RunID: "01B", Records: 2, StartedAt: time.Now().UTC(), Histogram: models.NewHistogram()})

	var out bytes.Buffer
	app := newTestApp(t, newTestConfig(rootDir), &out)
	ctx := context.Background()

	require.NoError(t, app.ListReports(ctx, "timing"))
	assert.JSONEq(t, `{"job":"timing","runIds":["01A","01B"]}`, out.String())

	out.Reset()
	require.NoError(t, app.ShowReport(ctx, "timing", "01A"))
	assert.Contains(t, out.String(), `"runId": "01A"`)
	assert.Contains(t, out.String(), `"800": 1`)
}

func TestApp_ShowReport_MergesRuns(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	for i, runID := range []string{"01A", "01B"} {
		hist := models.NewHistogram()
		hist.Observe(models.ModeMobile, "fmp", 400)
		saveReport(t, rootDir, &models.HistogramReport{Job: "fmp", RunID: runID, Records: int64(i + 1), Histogram: hist})
	}

	var out bytes.Buffer
	app := newTestApp(t, newTestConfig(rootDir), &out)

	require.NoError(t, app.ShowReport(context.Background(), "fmp", "01A", "01B"))

	var merged models.HistogramReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &merged))
	assert.Equal(t, "01A+01B", merged.RunID)
	assert.Equal(t, int64(3), merged.Records)
	assert.Equal(t, models.FrequencyTable{400: 2}, merged.Histogram.Table(models.ModeMobile, "fmp"))
}

func TestApp_ShowReport_NoRunIDs(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, newTestConfig(t.TempDir()), io.Discard)

	err := app.ShowReport(context.Background(), "fmp")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "APP_1003", svcErr.Code)
}

func TestApp_ShowReport_NotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, newTestConfig(t.TempDir()), io.Discard)

	err := app.ShowReport(context.Background(), "fmp", "missing")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "APP_1002", svcErr.Code)
	assert.Equal(t, svcerrors.ExitCodeNotFound, svcerrors.ExitCodeOf(err))
}

func TestApp_Reports_Disabled(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, newTestConfig(""), io.Discard)

	for _, err := range []error{
		app.ListReports(context.Background(), "fmp"),
		app.ShowReport(context.Background(), "fmp", "01A"),
	} {
		svcErr, ok := svcerrors.AsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, "APP_1001", svcErr.Code)
	}
}

func TestApp_RunAggregation_UnknownJob(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, newTestConfig(""), io.Discard)

	err := app.RunAggregation(context.Background(), "lcp")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "APP_1000", svcErr.Code)
	assert.Nil(t, app.mongoClient, "an unknown job must not dial mongo")
}

func TestApp_PopulateTasks_MongoUnreachable(t *testing.T) {
	t.Parallel()

	config := newTestConfig("")
	config.Mongo.URI = "not-a-mongo-uri"
	app := newTestApp(t, config, io.Discard)

	err := app.PopulateTasks(context.Background())

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "APP_9000", svcErr.Code)
	assert.Equal(t, svcerrors.ExitCodeInternal, svcerrors.ExitCodeOf(err))
}

func TestApp_Shutdown_PushesMetrics(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		paths []string
	)
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	// populate the aggregation counters so the push carries their labels
	service := aggregators.NewAggregationService(aggregators.NewHistogramAggregator(aggregators.PolicySkip), runs.NewTracker(), 0)
	_, svcErr := service.Run(context.Background(), "01PUSH", stubJob{})
	require.Nil(t, svcErr)

	config := newTestConfig("")
	config.Metrics.PushgatewayURL = gateway.URL
	app := newTestApp(t, config, io.Discard)
	app.pushJob = "fmp"

	require.NoError(t, app.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/metrics/job/perfstats_fmp/run_id/" + app.RunID()}, paths)
}

func TestApp_Shutdown_NothingToPush(t *testing.T) {
	t.Parallel()

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected push to %s", r.URL.Path)
	}))
	defer gateway.Close()

	config := newTestConfig("")
	config.Metrics.PushgatewayURL = gateway.URL
	app := newTestApp(t, config, io.Discard)

	assert.NoError(t, app.Shutdown(context.Background()))
}

// stubJob yields one present and one missing fmp reading.
type stubJob struct{}

func (stubJob) Name() string   { return aggregators.JobFMP }
func (stubJob) Source() string { return "perf_afterOL" }
func (stubJob) Metrics() []models.MetricSpec {
	return []models.MetricSpec{{Name: "fmp", Gap: 400}}
}

func (stubJob) Scan(ctx context.Context, fn func(*aggregators.Sample) error) error {
	for i, v := range []models.MetricValue{models.PresentMetric(401), models.MissingMetric(models.ReasonMissing)} {
		sample := &aggregators.Sample{
			RecordID: strconv.Itoa(i),
			Mode:     models.ModeMobile,
			Lookups:  []models.MetricLookup{{Metric: "fmp", Gap: 400, MetricValue: v}},
		}
		if err := fn(sample); err != nil {
			return err
		}
	}
	return nil
}
