package app

import (
	"fmt"

	"perf-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidArgumentUnknownJob      = "APP_1000"
	codeInvalidArgumentReportsDisabled = "APP_1001"
	codeNotFoundReport                 = "APP_1002"
	codeInvalidArgumentNoRunIDs        = "APP_1003"
	codeInternalMongoConnectFailed     = "APP_9000"
	codeInternalReportStoreFailed      = "APP_9001"
	codeInternalRenderFailed           = "APP_9002"
)

// errInvalidArgumentUnknownJob returns an error when no aggregation job has the given name.
func errInvalidArgumentUnknownJob(job string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArgumentUnknownJob, fmt.Sprintf("unknown job %q", job), nil)
}

// errInvalidArgumentReportsDisabled returns an error when reports are requested but not persisted.
func errInvalidArgumentReportsDisabled() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArgumentReportsDisabled, "file_storage.root_dir is not set, reports are not saved", nil)
}

// errNotFoundReport returns an error when no report was saved for a job and run.
func errNotFoundReport(job, runID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNotFoundReport, fmt.Sprintf("no %s report for run %s", job, runID), nil)
}

// errInvalidArgumentNoRunIDs returns an error when a report is requested without a run ID.
func errInvalidArgumentNoRunIDs() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArgumentNoRunIDs, "at least one run ID is required", nil)
}

// errInternalMongoConnectFailed returns an error when the source database cannot be reached.
func errInternalMongoConnectFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMongoConnectFailed, fmt.Errorf("mongoConnectFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when saving or reading a report fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalRenderFailed returns an error when writing output fails.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}
