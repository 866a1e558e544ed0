package http

import (
	"fmt"

	"perf-analytics/internal/shared/svcerrors"
)

const (
	codeNotFoundReport            = "HTTP_4040"
	codeInternalReportStoreFailed = "HTTP_9000"
)

// errNotFoundReport returns an error when no report was stored for a job and run.
func errNotFoundReport(job, runID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNotFoundReport, fmt.Sprintf("no %s report for run %s", job, runID), nil)
}

// errInternalReportStoreFailed returns an error when reading a stored report fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
