package stores

import (
	"context"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/databases"
)

// AuditReportStore reads finished lighthouse reports from perf_tasks_finished.
//
//go:generate mockgen -source=audit_report_store.go -destination=./mocks/audit_report_store_mock.go -package=mocks
type AuditReportStore interface {
	Stream(ctx context.Context, fn func(*models.AuditReport) error) error
}

type auditReportStore struct {
	collections *databases.Collections
}

func NewAuditReportStore(collections *databases.Collections) AuditReportStore {
	return &auditReportStore{collections: collections}
}

func (s *auditReportStore) Stream(ctx context.Context, fn func(*models.AuditReport) error) error {
	coll := s.collections.Get(databases.CollectionTasksFinished)
	return streamCollection(ctx, coll, (*auditReportDocument).toModel, fn)
}
