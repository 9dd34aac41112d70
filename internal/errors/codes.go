package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidSort   ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidID        ErrorCode = "TRANSACTION_003"
	TransactionValidationFailed ErrorCode = "TRANSACTION_004"
	TransactionInvalidKind      ErrorCode = "TRANSACTION_005"
)

// Cheque error codes (CHEQUE_*)
const (
	ChequeNotFound        ErrorCode = "CHEQUE_001"
	ChequeAlreadyCleared  ErrorCode = "CHEQUE_002"
	ChequeInvalidID       ErrorCode = "CHEQUE_003"
	ChequeInvalidStatus   ErrorCode = "CHEQUE_004"
	ChequeDuplicateNumber ErrorCode = "CHEQUE_005"
)

// Fund error codes (FUND_*)
const (
	FundMovementNotFound  ErrorCode = "FUND_001"
	FundMovementInvalidID ErrorCode = "FUND_002"
	FundInvalidAmount     ErrorCode = "FUND_003"
)

// Report error codes (REPORT_*)
const (
	ReportGenerationFailed ErrorCode = "REPORT_001"
	ReportExportFailed     ErrorCode = "REPORT_002"
	ReportInvalidPeriod    ErrorCode = "REPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStoreError         ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	status  int
	message string
}

// registry holds the HTTP status and default message of every code
var registry = map[ErrorCode]codeInfo{
	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format or range"},
	ValidationInvalidSort:   {http.StatusBadRequest, "Invalid sort key or direction"},

	TransactionNotFound:         {http.StatusNotFound, "Transaction not found"},
	TransactionInvalidAmount:    {http.StatusBadRequest, "Invalid transaction amount"},
	TransactionInvalidID:        {http.StatusBadRequest, "Invalid transaction ID format"},
	TransactionValidationFailed: {http.StatusUnprocessableEntity, "Transaction validation failed"},
	TransactionInvalidKind:      {http.StatusUnprocessableEntity, "Invalid transaction kind"},

	ChequeNotFound:        {http.StatusNotFound, "Cheque not found"},
	ChequeAlreadyCleared:  {http.StatusConflict, "Cheque has already been cleared"},
	ChequeInvalidID:       {http.StatusBadRequest, "Invalid cheque ID format"},
	ChequeInvalidStatus:   {http.StatusBadRequest, "Invalid cheque status"},
	ChequeDuplicateNumber: {http.StatusConflict, "A cheque with this number is already registered"},

	FundMovementNotFound:  {http.StatusNotFound, "Fund movement not found"},
	FundMovementInvalidID: {http.StatusBadRequest, "Invalid fund movement ID format"},
	FundInvalidAmount:     {http.StatusBadRequest, "Invalid fund movement amount"},

	ReportGenerationFailed: {http.StatusInternalServerError, "Report generation failed"},
	ReportExportFailed:     {http.StatusInternalServerError, "Report export failed"},
	ReportInvalidPeriod:    {http.StatusBadRequest, "Invalid report period"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemStoreError:         {http.StatusInternalServerError, "Data store error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "Route not found"},
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status of a code; unknown codes are 500
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// IsValidErrorCode checks if the provided error code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
