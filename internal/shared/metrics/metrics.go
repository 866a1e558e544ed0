package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promhttppkg "github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	FieldErrorCode = "error_code"
	FieldJobName   = "job_name"

	ValueNoError = ""

	Namespace      = "perf_analytics"
	SubAggregation = "aggregation"
	SubTasks       = "tasks"
	SubHTTP        = "http"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// NewCounterVec creates a new CounterVec with the given CounterOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogramVec creates a new HistogramVec with the given HistogramOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewHistogramVec = promauto.NewHistogramVec

// PromHTTP wraps the promhttp package to provide access via metrics.promhttp.
type promHTTP struct{}

// Handler returns an http.Handler for the Prometheus metrics endpoint.
func (promHTTP) Handler() http.Handler {
	return promhttppkg.Handler()
}

// PromHTTP is an instance that wraps the promhttp package functionality.
// Access it via metrics.PromHTTP.
var PromHTTP = promHTTP{}

// Push sends everything in the default registry to a Pushgateway, grouped by run.
// Batch runs end before a scrape could reach them, so this is how their counters survive.
var Push = func(gatewayURL, job, runID string) error {
	err := push.New(gatewayURL, job).
		Gatherer(prometheus.DefaultGatherer).
		Grouping("run_id", runID).
		Push()
	if err != nil {
		return fmt.Errorf("failed to push metrics to %q: %w", gatewayURL, err)
	}
	return nil
}
