package errors

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func codesByPrefix() map[string][]ErrorCode {
	return map[string][]ErrorCode{
		"VALIDATION_": {
			ValidationGeneral,
			ValidationRequiredField,
			ValidationInvalidFormat,
			ValidationOutOfRange,
			ValidationInvalidDate,
			ValidationInvalidSort,
		},
		"TRANSACTION_": {
			TransactionNotFound,
			TransactionInvalidAmount,
			TransactionInvalidID,
			TransactionValidationFailed,
			TransactionInvalidKind,
		},
		"CHEQUE_": {
			ChequeNotFound,
			ChequeAlreadyCleared,
			ChequeInvalidID,
			ChequeInvalidStatus,
			ChequeDuplicateNumber,
		},
		"FUND_": {
			FundMovementNotFound,
			FundMovementInvalidID,
			FundInvalidAmount,
		},
		"REPORT_": {
			ReportGenerationFailed,
			ReportExportFailed,
			ReportInvalidPeriod,
		},
		"SYSTEM_": {
			SystemInternalError,
			SystemStoreError,
			SystemServiceUnavailable,
			SystemConfigurationError,
			SystemUnexpectedError,
			SystemRateLimitExceeded,
			SystemRouteNotFound,
		},
	}
}

func allCodes() []ErrorCode {
	var codes []ErrorCode
	for _, group := range codesByPrefix() {
		codes = append(codes, group...)
	}
	return codes
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "Cheque Already Cleared",
			code:     ChequeAlreadyCleared,
			expected: "Cheque has already been cleared",
		},
		{
			name:     "Fund Movement Not Found",
			code:     FundMovementNotFound,
			expected: "Fund movement not found",
		},
		{
			name:     "Report Export Failed",
			code:     ReportExportFailed,
			expected: "Report export failed",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"CHEQUE_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	for prefix, codes := range codesByPrefix() {
		s.Run(prefix, func() {
			for _, code := range codes {
				s.True(strings.HasPrefix(string(code), prefix), "Error code %s should start with %s", code, prefix)
			}
		})
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}

func (s *CodesTestSuite) TestGetHTTPStatus() {
	expected := map[int][]ErrorCode{
		http.StatusBadRequest: {
			ValidationGeneral, ValidationInvalidSort, TransactionInvalidID, TransactionInvalidAmount,
			ChequeInvalidID, ChequeInvalidStatus, FundMovementInvalidID, ReportInvalidPeriod,
		},
		http.StatusNotFound:            {TransactionNotFound, ChequeNotFound, FundMovementNotFound, SystemRouteNotFound},
		http.StatusConflict:            {ChequeAlreadyCleared, ChequeDuplicateNumber},
		http.StatusUnprocessableEntity: {TransactionValidationFailed, TransactionInvalidKind},
		http.StatusTooManyRequests:     {SystemRateLimitExceeded},
		http.StatusServiceUnavailable:  {SystemServiceUnavailable},
		http.StatusInternalServerError: {
			SystemInternalError, SystemStoreError, SystemUnexpectedError,
			ReportGenerationFailed, ReportExportFailed,
		},
	}

	for status, codes := range expected {
		for _, code := range codes {
			s.Equal(status, GetHTTPStatus(code), string(code))
		}
	}

	s.Equal(http.StatusInternalServerError, GetHTTPStatus("UNKNOWN_999"))
}
