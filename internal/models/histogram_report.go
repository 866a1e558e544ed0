package models

import (
	"encoding/json"
	"time"
)

// HistogramReport is the outcome of one aggregation run.
type HistogramReport struct {
	Job            string     `json:"job"`
	RunID          string     `json:"runId"`
	Source         string     `json:"source"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     time.Time  `json:"finishedAt"`
	Records        int64      `json:"records"`
	SkippedLookups int64      `json:"skippedLookups"`
	Histogram      *Histogram `json:"histogram"`
}

func (h *Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.ByMode)
}

func (h *Histogram) UnmarshalJSON(data []byte) error {
	byMode := make(map[DeviceMode]map[string]*MetricHistogram)
	if err := json.Unmarshal(data, &byMode); err != nil {
		return err
	}
	for _, metrics := range byMode {
		for _, mh := range metrics {
			if mh.Buckets == nil {
				mh.Buckets = make(FrequencyTable)
			}
		}
	}
	h.ByMode = byMode
	return nil
}

// Merge folds other into r, so several runs of one job can be read as one.
// The run ID lists the merged runs joined by "+".
func (r *HistogramReport) Merge(other *HistogramReport) {
	if r.Histogram == nil {
		r.Histogram = NewHistogram()
	}
	r.Histogram.Merge(other.Histogram)
	r.Records += other.Records
	r.SkippedLookups += other.SkippedLookups
	r.RunID += "+" + other.RunID
	if other.StartedAt.Before(r.StartedAt) {
		r.StartedAt = other.StartedAt
	}
	if other.FinishedAt.After(r.FinishedAt) {
		r.FinishedAt = other.FinishedAt
	}
}
