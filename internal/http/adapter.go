package http

import (
	"encoding/json"
	"net/http"

	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/svcerrors"
)

// AppHttpHandler is a handler that reports failures as errors instead of writing them itself.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

const headerContentType = "content-type"

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		// Log internal errors at error level
		if svcErr.IsInternalError() {
			logger := loggers.Ctx(r.Context())

			logger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in handler")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	// the error code becomes a metrics label in mwObserve
	if sw, ok := w.(*statusWriter); ok {
		sw.errorCode = svcErr.Code
	}

	errorResponse := ErrorResponse{
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	}
	logger := loggers.Ctx(r.Context())
	logger.Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode()).
		Msg("error response")

	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(svcErr.HttpStatusCode())

	_ = json.NewEncoder(w).Encode(errorResponse)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
