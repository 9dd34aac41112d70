package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"church-treasury/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted on the API
const DateLayout = "2006-01-02"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("entry_kind", validateEntryKind)
	_ = v.RegisterValidation("cheque_status", validateChequeStatus)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("sort_key", validateSortKey)
	_ = v.RegisterValidation("sort_direction", validateSortDirection)
	_ = v.RegisterValidation("category_sort_key", validateCategorySortKey)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validateMoneyAmount validates a positive decimal string with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}

	if !amount.IsPositive() {
		return false
	}

	return amount.Exponent() >= -2 || amount.Equal(amount.Round(2))
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && amount.IsPositive()
	default:
		return false
	}
}

// validateEntryKind validates that the direction is inflow or outflow
func validateEntryKind(fl validator.FieldLevel) bool {
	return models.IsValidEntryKind(fl.Field().String())
}

// validateChequeStatus validates a cheque status
func validateChequeStatus(fl validator.FieldLevel) bool {
	return models.IsValidChequeStatus(fl.Field().String())
}

// validateCalendarDate validates a YYYY-MM-DD date
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateSortKey(fl validator.FieldLevel) bool {
	return models.IsValidSortKey(fl.Field().String())
}

func validateSortDirection(fl validator.FieldLevel) bool {
	return models.IsValidSortDirection(fl.Field().String())
}

func validateCategorySortKey(fl validator.FieldLevel) bool {
	return models.IsValidCategorySortKey(fl.Field().String())
}
