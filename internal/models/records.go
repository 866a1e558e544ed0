package models

// PageView is one page-view beacon from the pv_log collection.
type PageView struct {
	ID          string
	UserAgent   *string // nil when the document has no ua field
	CurrentHref string  // data.currenthref
}

// TimingRecord is one real-user timing beacon from perf_afterOL or perf_OL.
type TimingRecord struct {
	ID        string
	UserAgent *string
	FMP       MetricValue
	TTI       MetricValue
	FCP       MetricValue
}

// AuditReport is one finished lighthouse run from perf_tasks_finished.
type AuditReport struct {
	ID           string
	RequestedURL string
	FormFactor   string                 // configSettings.emulatedFormFactor
	Audits       map[string]MetricValue // audits.<name>.rawValue
}

// Audit returns the raw value of a named audit, or a missing value when the
// report has no such audit.
func (r *AuditReport) Audit(name string) MetricValue {
	if v, ok := r.Audits[name]; ok {
		return v
	}
	return MissingMetric(ReasonMissing)
}

// Task is an audit job keyed by its natural key (requested URL + mode).
// The same struct is written to perf_tasks_unfinished and read back from
// perf_tasks_finished.
type Task struct {
	RequestedURL string     `json:"requestedUrl"`
	Mode         DeviceMode `json:"mode"`
}

// Key returns the natural key as a single string.
func (t Task) Key() string {
	return string(t.Mode) + " " + t.RequestedURL
}
