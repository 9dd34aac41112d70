package handlers

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"church-treasury/internal/dto"
	"church-treasury/internal/errors"
	"church-treasury/internal/models"
	"church-treasury/internal/services"
	"church-treasury/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// yearAll is the year parameter value that lifts the default year scope
const yearAll = "all"

// queryParamError describes a query parameter that passed validation tags but could not be interpreted
type queryParamError struct {
	param string
	msg   string
}

func (e *queryParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.param, e.msg)
}

// bindTransactionQuery binds, validates and converts the list/report query parameters.
// Validation errors are returned as-is so the error handler can format them per field.
func bindTransactionQuery(c echo.Context) (models.TransactionQuery, error) {
	var raw dto.TransactionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &raw); err != nil {
		return models.TransactionQuery{}, &queryParamError{param: "query", msg: "invalid query parameters"}
	}

	if err := c.Validate(raw); err != nil {
		return models.TransactionQuery{}, err
	}

	return toTransactionQuery(raw)
}

func toTransactionQuery(raw dto.TransactionQuery) (models.TransactionQuery, error) {
	var query models.TransactionQuery

	switch year := strings.TrimSpace(raw.Year); {
	case year == "":
	case strings.EqualFold(year, yearAll):
		query.AllYears = true
	default:
		value, err := strconv.Atoi(year)
		if err != nil || value < 1 {
			return query, &queryParamError{param: "year", msg: "must be a year or 'all'"}
		}
		query.Filters.Year = models.IntPtr(value)
	}

	if month := strings.TrimSpace(raw.Month); month != "" {
		value, err := strconv.Atoi(month)
		if err != nil || value < 1 || value > 12 {
			return query, &queryParamError{param: "month", msg: "must be between 1 and 12"}
		}
		query.Filters.Month = models.IntPtr(value)
	}

	if raw.DateFrom != "" {
		from, err := time.Parse(validation.DateLayout, raw.DateFrom)
		if err != nil {
			return query, &queryParamError{param: "date_from", msg: "must be a date in YYYY-MM-DD format"}
		}
		query.Filters.DateFrom = &from
	}

	if raw.DateTo != "" {
		to, err := time.Parse(validation.DateLayout, raw.DateTo)
		if err != nil {
			return query, &queryParamError{param: "date_to", msg: "must be a date in YYYY-MM-DD format"}
		}
		query.Filters.DateTo = &to
	}

	query.Filters.Category = raw.Category
	query.Filters.TextQuery = strings.TrimSpace(raw.TextQuery)
	query.Filters.InflowOnly = raw.InflowOnly == "true" || raw.InflowOnly == "1"

	if raw.Sort != "" {
		direction := raw.Direction
		if direction == "" {
			direction = models.SortDirectionAscending
		}
		query.Sort = &models.TransactionSort{Key: raw.Sort, Direction: direction}
	}

	if raw.CategorySort != "" {
		direction := raw.CategoryDir
		if direction == "" {
			direction = models.SortDirectionAscending
		}
		query.CategorySort = &models.CategorySort{Key: raw.CategorySort, Direction: direction}
	}

	return query, nil
}

// sendQueryError renders a failure of bindTransactionQuery
func sendQueryError(c echo.Context, err error) error {
	var paramErr *queryParamError
	if stderrors.As(err, &paramErr) {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(paramErr.Error()))
	}
	return err
}

// parseUUIDParam reads a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// sendServiceError maps service sentinel errors to API error codes.
// Anything unrecognised is treated as a system error.
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrInvalidDate):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrValidationFailed):
		return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrChequeNotFound):
		return SendError(c, errors.ChequeNotFound)
	case stderrors.Is(err, services.ErrChequeAlreadyCleared):
		return SendError(c, errors.ChequeAlreadyCleared)
	case stderrors.Is(err, services.ErrDuplicateChequeNumber):
		return SendError(c, errors.ChequeDuplicateNumber)
	case stderrors.Is(err, services.ErrInvalidChequeStatus):
		return SendError(c, errors.ChequeInvalidStatus)
	case stderrors.Is(err, services.ErrFundMovementNotFound):
		return SendError(c, errors.FundMovementNotFound)
	default:
		return SendSystemError(c, err)
	}
}

// ClientIP identifies the caller: the first X-Forwarded-For hop, then X-Real-IP,
// then the connection address without its port.
func ClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
