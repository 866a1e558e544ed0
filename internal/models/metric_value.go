package models

import "math"

// MissingReason says why a metric could not be read from a record.
type MissingReason string

const (
	ReasonMissing     MissingReason = "missing"
	ReasonNotNumeric  MissingReason = "not_numeric"
	ReasonNonFinite   MissingReason = "non_finite"
	ReasonInvalidMode MissingReason = "invalid_mode"
)

// MetricValue is an optional numeric reading. Present is false when the
// field was absent or unusable, and Reason then says which.
type MetricValue struct {
	Value   float64
	Present bool
	Reason  MissingReason
}

// PresentMetric wraps a raw number. NaN and infinities are reported as missing.
func PresentMetric(v float64) MetricValue {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MissingMetric(ReasonNonFinite)
	}
	return MetricValue{Value: v, Present: true}
}

func MissingMetric(reason MissingReason) MetricValue {
	return MetricValue{Reason: reason}
}

// MetricLookup is the result of extracting one watched metric from one record.
type MetricLookup struct {
	Metric string
	Gap    int64
	MetricValue
}

// MetricSpec names a watched metric and the width of its buckets.
type MetricSpec struct {
	Name string `json:"name"`
	Gap  int64  `json:"gap"`
}
