package handlers

import (
	"church-treasury/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator plugs the ledger rules into echo's c.Validate
type CustomValidator struct {
	rules *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{rules: validation.GetValidator()}
}

// Validate returns validator.ValidationErrors untouched so CustomHTTPErrorHandler can render them per field
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.rules.Struct(i)
}
