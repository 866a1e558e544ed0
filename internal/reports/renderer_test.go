package reports

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/ulid"
	"perf-analytics/internal/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReport() *models.HistogramReport {
	hist := models.NewHistogram()
	hist.Observe(models.ModeMobile, "fmp", 400)
	hist.Observe(models.ModeMobile, "fmp", 400)
	hist.Observe(models.ModeMobile, "fmp", 1200)
	hist.ObserveUnknown(models.ModeMobile, "fmp")
	hist.Observe(models.ModeDesktop, "fmp", 800)

	return &models.HistogramReport{
		Job:            "fmp",
		RunID:          "01HZX3A7Q2",
		Source:         "xes_fed_bi_perf_afterOL",
		StartedAt:      time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC),
		FinishedAt:     time.Date(2025, 12, 28, 18, 4, 0, 0, time.UTC),
		Records:        5,
		SkippedLookups: 1,
		Histogram:      hist,
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &tableRenderer{}, NewRenderer(FormatTable))
	assert.IsType(t, &jsonRenderer{}, NewRenderer(FormatJSON))
	assert.IsType(t, &tableRenderer{}, NewRenderer(""), "table is the default")
}

func TestTableRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatTable).Render(&buf, newTestReport()))
	out := buf.String()

	assert.Contains(t, out, "fmp run 01HZX3A7Q2")
	assert.Contains(t, out, "xes_fed_bi_perf_afterOL")
	assert.Contains(t, out, "desktop / fmp")
	assert.Contains(t, out, "mobile / fmp")
	assert.Contains(t, out, "unknown")

	// desktop sorts before mobile, and buckets are ascending within a table
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("desktop / fmp")), bytes.Index(buf.Bytes(), []byte("mobile / fmp")))
	mobile := out[bytes.Index(buf.Bytes(), []byte("mobile / fmp")):]
	assert.Less(t, bytes.Index([]byte(mobile), []byte("400")), bytes.Index([]byte(mobile), []byte("1200")))
}

func TestTableRenderer_Render_EmptyHistogram(t *testing.T) {
	t.Parallel()

	report := newTestReport()
	report.Histogram = models.NewHistogram()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatTable).Render(&buf, report))
	assert.Contains(t, buf.String(), "no observations")
}

func TestTableRenderer_RenderPopulateAndStatus(t *testing.T) {
	t.Parallel()

	r := NewRenderer(FormatTable)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPopulate(&buf, &tasks.PopulateResult{RunID: "01RUN", Scanned: 10, Created: 3, Matched: 6, Skipped: 1}))
	assert.Contains(t, buf.String(), "task population 01RUN")
	assert.Contains(t, buf.String(), "Created")

	buf.Reset()
	require.NoError(t, r.RenderStatus(&buf, &tasks.QueueStatus{Unfinished: 7, Finished: 42}))
	assert.Contains(t, buf.String(), "audit task queue")
	assert.Contains(t, buf.String(), "42")

	buf.Reset()
	runID := "01KFZ8V6J0ZP9M4D3Z8N7Q2R5T"
	require.NoError(t, r.RenderReportList(&buf, "fmp", []string{runID, "not-a-ulid"}))
	assert.Contains(t, buf.String(), "fmp reports")
	assert.Contains(t, buf.String(), runID)
	started, err := ulid.TimeOf(runID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), started.Format(timeLayout))
	assert.Contains(t, buf.String(), "not-a-ulid")
}

func TestJSONRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatJSON).Render(&buf, newTestReport()))

	var decoded models.HistogramReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "fmp", decoded.Job)
	assert.Equal(t, int64(5), decoded.Records)
	assert.Equal(t, models.FrequencyTable{400: 2, 1200: 1}, decoded.Histogram.Table(models.ModeMobile, "fmp"))
	assert.Equal(t, int64(1), decoded.Histogram.Get(models.ModeMobile, "fmp").Unknown)
}

func TestJSONRenderer_RenderReportList_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatJSON).RenderReportList(&buf, "audits", nil))
	assert.JSONEq(t, `{"job":"audits","runIds":[]}`, buf.String())
}
