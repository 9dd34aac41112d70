package handlers

import (
	"log/slog"

	"church-treasury/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures through two helpers only:
//
//   - SendError for client errors. The code decides the status, e.g.
//     SendError(c, errors.ChequeAlreadyCleared) answers 409.
//   - SendSystemError / sendFailure for server errors. The cause is logged with
//     the trace ID and replaced by the generic message of the code.

const (
	// TraceIDContextKey is the echo context key the RequestID middleware fills
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// getTraceIDFromContext prefers the response header the RequestID middleware set
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers SYSTEM_001 and logs err
func SendSystemError(c echo.Context, err error) error {
	return sendFailure(c, errors.SystemInternalError, "request failed", err)
}

// sendFailure logs err under event and answers the generic response of a server error code
func sendFailure(c echo.Context, code errors.ErrorCode, event string, err error, attrs ...any) error {
	traceID := getTraceIDFromContext(c)

	attrs = append([]any{
		"error", err,
		"error_code", string(code),
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	}, attrs...)
	slog.ErrorContext(c.Request().Context(), event, attrs...)

	errorResponse := errors.NewSystemError(code, traceID)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
