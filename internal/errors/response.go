package errors

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ErrorResponse is the envelope every failed API call returns
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines of the response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithFieldErrors renders one "field: message" detail per field, ordered by field name
func WithFieldErrors(fieldErrors map[string]string) ErrorOption {
	return func(er *ErrorResponse) {
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		details := make([]string, 0, len(fields))
		for _, field := range fields {
			details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
		}
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError builds a VALIDATION_001 response with per-field details
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithFieldErrors(fieldErrors))
}

// NewSystemError hides err behind the generic message of code.
// Callers log err themselves; it never reaches the client.
func NewSystemError(code ErrorCode, traceID string) *ErrorResponse {
	if GetHTTPStatus(code) < 500 {
		code = SystemInternalError
	}
	return NewErrorResponse(code, traceID)
}

func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
