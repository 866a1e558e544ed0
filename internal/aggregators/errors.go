package aggregators

import (
	"fmt"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidArgumentMetricGap  = "AGG_1000"
	codeInternalSourceStoreFailed = "AGG_9000"
)

// errInvalidArgumentMetricGap returns an error when a watched metric has a non-positive bucket width.
func errInvalidArgumentMetricGap(spec models.MetricSpec) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArgumentMetricGap, fmt.Sprintf("metric %q has invalid gap %d", spec.Name, spec.Gap), nil)
}

// errInternalSourceStoreFailed returns an error when streaming the source collection fails.
func errInternalSourceStoreFailed(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceStoreFailed, fmt.Errorf("sourceStoreFailed(%s): %w", source, cause))
}
