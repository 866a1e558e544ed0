package tasks

import (
	"fmt"

	"perf-analytics/internal/shared/svcerrors"
)

const (
	codeInternalPageViewStoreFailed = "TSK_9000"
	codeInternalTaskStoreFailed     = "TSK_9001"
)

// errInternalPageViewStoreFailed returns an error when streaming page views fails.
func errInternalPageViewStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPageViewStoreFailed, fmt.Errorf("pageViewStoreFailed: %w", cause))
}

// errInternalTaskStoreFailed returns an error when a task queue operation fails.
func errInternalTaskStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTaskStoreFailed, fmt.Errorf("taskStoreFailed: %w", cause))
}
