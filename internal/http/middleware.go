package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func setupMiddleware(router *chi.Mux, tracker *runs.Tracker, httpLogger loggers.Logger) {
	router.Use(mwRunLogger(tracker, httpLogger))
	router.Use(mwObserve)
	router.Use(mwRecoverer)
}

// statusWriter remembers the status and the service error code of a response.
type statusWriter struct {
	middleware.WrapResponseWriter
	errorCode string
}

func (w *statusWriter) status() int {
	if s := w.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// mwRunLogger puts a logger tagged with the run being served into the request context.
// The status listener only lives as long as a run, so there is no request ID.
func mwRunLogger(tracker *runs.Tracker, httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logCtx := httpLogger.With()
			if snap := tracker.Snapshot(); snap.RunID != "" {
				logCtx = logCtx.Str(loggers.FieldRunID, snap.RunID).Str(loggers.FieldJob, snap.Job)
			}
			logger := logCtx.Logger()
			next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
		})
	}
}

// mwObserve records the request in the http metrics and logs it once served.
// Routes are labelled by pattern so that run IDs never become label values.
func mwObserve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{WrapResponseWriter: middleware.NewWrapResponseWriter(w, r.ProtoMajor)}
		next.ServeHTTP(sw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := sw.status()
		elapsed := time.Since(start)

		metricHTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status), sw.errorCode).Inc()
		metricHTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		// status is polled, keep it out of info logs
		loggers.Ctx(r.Context()).Debug().
			Str(loggers.FieldHttpRoute, route).
			Int(loggers.FieldHttpStatus, status).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("status request served")
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("status handler panic: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}
