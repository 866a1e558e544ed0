package reports

import (
	"encoding/json"
	"fmt"
	"io"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/ulid"
	"perf-analytics/internal/tasks"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Format string

const timeLayout = "2006-01-02 15:04:05Z07:00"

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer writes run results to the terminal. Reports go to stdout, logs to stderr.
//
//go:generate mockgen -source=renderer.go -destination=./mocks/renderer_mock.go -package=mocks
type Renderer interface {
	Render(w io.Writer, report *models.HistogramReport) error
	RenderPopulate(w io.Writer, result *tasks.PopulateResult) error
	RenderStatus(w io.Writer, status *tasks.QueueStatus) error
	RenderReportList(w io.Writer, job string, runIDs []string) error
}

func NewRenderer(format Format) Renderer {
	if format == FormatJSON {
		return &jsonRenderer{}
	}
	return &tableRenderer{}
}

type tableRenderer struct{}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// Render prints a summary followed by one bucket table per mode and metric.
// Buckets are listed in ascending order; each bucket is the ceiling of the
// values counted in it.
func (r *tableRenderer) Render(w io.Writer, report *models.HistogramReport) error {
	summary := newTable(w)
	summary.SetTitle("%s run %s", report.Job, report.RunID)
	summary.AppendRows([]table.Row{
		{"Source", report.Source},
		{"Started", report.StartedAt.Format(timeLayout)},
		{"Finished", report.FinishedAt.Format(timeLayout)},
		{"Records", report.Records},
		{"Skipped lookups", report.SkippedLookups},
	})
	summary.Render()

	hist := report.Histogram
	if hist == nil || len(hist.ByMode) == 0 {
		_, err := fmt.Fprintln(w, "no observations")
		return err
	}

	for _, mode := range hist.Modes() {
		for _, metric := range hist.Metrics(mode) {
			mh := hist.Get(mode, metric)
			keys, counts := mh.Buckets.Split()

			t := newTable(w)
			t.SetTitle("%s / %s", mode, metric)
			t.AppendHeader(table.Row{"Bucket", "Count"})
			for i := range keys {
				t.AppendRow(table.Row{keys[i], counts[i]})
			}
			if mh.Unknown > 0 {
				t.AppendRow(table.Row{"unknown", mh.Unknown})
			}
			t.AppendFooter(table.Row{"Total", mh.Buckets.Total() + mh.Unknown})
			t.Render()
		}
	}
	return nil
}

func (r *tableRenderer) RenderPopulate(w io.Writer, result *tasks.PopulateResult) error {
	t := newTable(w)
	t.SetTitle("task population %s", result.RunID)
	t.AppendHeader(table.Row{"Scanned", "Created", "Matched", "Skipped"})
	t.AppendRow(table.Row{result.Scanned, result.Created, result.Matched, result.Skipped})
	t.Render()
	return nil
}

func (r *tableRenderer) RenderStatus(w io.Writer, status *tasks.QueueStatus) error {
	t := newTable(w)
	t.SetTitle("audit task queue")
	t.AppendHeader(table.Row{"Unfinished", "Finished"})
	t.AppendRow(table.Row{status.Unfinished, status.Finished})
	t.Render()
	return nil
}

func (r *tableRenderer) RenderReportList(w io.Writer, job string, runIDs []string) error {
	t := newTable(w)
	t.SetTitle("%s reports", job)
	t.AppendHeader(table.Row{"#", "Run ID", "Started"})
	for i, runID := range runIDs {
		started := "-"
		if ts, err := ulid.TimeOf(runID); err == nil {
			started = ts.Format(timeLayout)
		}
		t.AppendRow(table.Row{i + 1, runID, started})
	}
	t.AppendFooter(table.Row{"Total", len(runIDs)})
	t.Render()
	return nil
}

type jsonRenderer struct{}

func (r *jsonRenderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (r *jsonRenderer) Render(w io.Writer, report *models.HistogramReport) error {
	return r.encode(w, report)
}

func (r *jsonRenderer) RenderPopulate(w io.Writer, result *tasks.PopulateResult) error {
	return r.encode(w, result)
}

func (r *jsonRenderer) RenderStatus(w io.Writer, status *tasks.QueueStatus) error {
	return r.encode(w, status)
}

func (r *jsonRenderer) RenderReportList(w io.Writer, job string, runIDs []string) error {
	if runIDs == nil {
		runIDs = []string{}
	}
	return r.encode(w, map[string]any{"job": job, "runIds": runIDs})
}
