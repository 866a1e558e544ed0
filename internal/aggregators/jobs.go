package aggregators

import (
	"context"
	"strings"

	"perf-analytics/internal/classifiers"
	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/databases"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/stores"
)

const (
	JobFMP    = "fmp"
	JobTiming = "timing"
	JobAudits = "audits"
)

// Sample is one record reduced to what the histogram needs: the device mode
// it is attributed to and one lookup per watched metric.
type Sample struct {
	RecordID string
	Mode     models.DeviceMode
	Lookups  []models.MetricLookup
}

// Job is one aggregation: a source collection plus the metrics watched in it.
//
//go:generate mockgen -source=jobs.go -destination=./mocks/jobs_mock.go -package=mocks
type Job interface {
	Name() string
	// Source is the base collection name the job reads.
	Source() string
	Metrics() []models.MetricSpec
	// Scan streams the source and calls fn once per record.
	Scan(ctx context.Context, fn func(*Sample) error) error
}

type timingMetric struct {
	spec  models.MetricSpec
	value func(*models.TimingRecord) models.MetricValue
}

type timingJob struct {
	name       string
	source     string
	metrics    []timingMetric
	store      stores.TimingStore
	classifier classifiers.Classifier
}

// NewFMPJob buckets first meaningful paint from the after-onload beacons.
func NewFMPJob(store stores.TimingStore, classifier classifiers.Classifier, gap int64) Job {
	return &timingJob{
		name:   JobFMP,
		source: databases.CollectionTimingsAfterOL,
		metrics: []timingMetric{
			{spec: models.MetricSpec{Name: "fmp", Gap: gap}, value: func(r *models.TimingRecord) models.MetricValue { return r.FMP }},
		},
		store:      store,
		classifier: classifier,
	}
}

// NewTimingJob buckets time to interactive and first contentful paint from
// the onload beacons. Either may be absent on a given record.
func NewTimingJob(store stores.TimingStore, classifier classifiers.Classifier, gap int64) Job {
	return &timingJob{
		name:   JobTiming,
		source: databases.CollectionTimingsOL,
		metrics: []timingMetric{
			{spec: models.MetricSpec{Name: "tti", Gap: gap}, value: func(r *models.TimingRecord) models.MetricValue { return r.TTI }},
			{spec: models.MetricSpec{Name: "fcp", Gap: gap}, value: func(r *models.TimingRecord) models.MetricValue { return r.FCP }},
		},
		store:      store,
		classifier: classifier,
	}
}

func (j *timingJob) Name() string   { return j.name }
func (j *timingJob) Source() string { return j.source }

func (j *timingJob) Metrics() []models.MetricSpec {
	specs := make([]models.MetricSpec, len(j.metrics))
	for i, m := range j.metrics {
		specs[i] = m.spec
	}
	return specs
}

func (j *timingJob) Scan(ctx context.Context, fn func(*Sample) error) error {
	return j.store.Stream(ctx, j.source, func(record *models.TimingRecord) error {
		sample := &Sample{
			RecordID: record.ID,
			Mode:     j.classifier.DeviceMode(record.UserAgent),
			Lookups:  make([]models.MetricLookup, 0, len(j.metrics)),
		}
		for _, m := range j.metrics {
			sample.Lookups = append(sample.Lookups, models.MetricLookup{
				Metric:      m.spec.Name,
				Gap:         m.spec.Gap,
				MetricValue: m.value(record),
			})
		}
		return fn(sample)
	})
}

type auditJob struct {
	metrics []models.MetricSpec
	store   stores.AuditReportStore
}

// NewAuditJob buckets lighthouse audit values from finished tasks. The mode
// comes from the report's emulated form factor, not from a user agent.
func NewAuditJob(store stores.AuditReportStore, metrics []models.MetricSpec) Job {
	return &auditJob{metrics: metrics, store: store}
}

func (j *auditJob) Name() string                 { return JobAudits }
func (j *auditJob) Source() string               { return databases.CollectionTasksFinished }
func (j *auditJob) Metrics() []models.MetricSpec { return j.metrics }

func (j *auditJob) Scan(ctx context.Context, fn func(*Sample) error) error {
	return j.store.Stream(ctx, func(report *models.AuditReport) error {
		sample := &Sample{
			RecordID: report.ID,
			Lookups:  make([]models.MetricLookup, 0, len(j.metrics)),
		}
		mode, err := auditMode(report.FormFactor)
		if err == nil {
			sample.Mode = mode
		} else {
			loggers.Ctx(ctx).Warn().
				Str(loggers.FieldRecordID, report.ID).
				Str(loggers.FieldFormFactor, report.FormFactor).
				Msg("audit form factor is not a device mode")
		}
		for _, spec := range j.metrics {
			value := report.Audit(spec.Name)
			if err != nil {
				// no mode to attribute the value to
				value = models.MissingMetric(models.ReasonInvalidMode)
			}
			sample.Lookups = append(sample.Lookups, models.MetricLookup{
				Metric:      spec.Name,
				Gap:         spec.Gap,
				MetricValue: value,
			})
		}
		return fn(sample)
	})
}

// formFactorNone is lighthouse's "no emulation": the audit ran in the desktop host browser.
const formFactorNone = "none"

func auditMode(formFactor string) (models.DeviceMode, error) {
	if strings.EqualFold(formFactor, formFactorNone) {
		return models.ModeDesktop, nil
	}
	return models.ParseDeviceMode(formFactor)
}
