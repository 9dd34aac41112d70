package handlers

import (
	"net/http"

	"church-treasury/internal/dto"
	"church-treasury/internal/errors"
	"church-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

// ChequeHandler handles the cheque register endpoints
type ChequeHandler struct {
	chequeService services.ChequeServiceInterface
}

// NewChequeHandler creates a new cheque handler
func NewChequeHandler(chequeService services.ChequeServiceInterface) *ChequeHandler {
	return &ChequeHandler{chequeService: chequeService}
}

// ListCheques returns the register, optionally filtered by status
// @Summary List cheques
// @Tags Cheques
// @Produce json
// @Param status query string false "Status" Enums(pending, cleared)
// @Success 200 {array} models.Cheque
// @Failure 400 {object} errors.ErrorResponse "CHEQUE_004 - Invalid status"
// @Router /cheques [get]
func (h *ChequeHandler) ListCheques(c echo.Context) error {
	var query dto.ChequeQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ChequeInvalidStatus)
	}

	cheques, err := h.chequeService.ListCheques(query.Status)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, cheques)
}

// RegisterCheque records an issued cheque as pending
// @Summary Register cheque
// @Tags Cheques
// @Accept json
// @Produce json
// @Param request body dto.CreateChequeRequest true "Cheque"
// @Success 201 {object} models.Cheque
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "CHEQUE_005 - Number already registered"
// @Router /cheques [post]
func (h *ChequeHandler) RegisterCheque(c echo.Context) error {
	var req dto.CreateChequeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	cheque, err := h.chequeService.RegisterCheque(&req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, cheque)
}

// GetSummary returns counts and totals of pending and cleared cheques
// @Summary Cheque summary
// @Tags Cheques
// @Produce json
// @Success 200 {object} models.ChequeSummary
// @Router /cheques/summary [get]
func (h *ChequeHandler) GetSummary(c echo.Context) error {
	summary, err := h.chequeService.GetSummary()
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// ClearCheque marks a pending cheque as cleared
// @Summary Clear cheque
// @Tags Cheques
// @Produce json
// @Param id path string true "Cheque ID (UUID)"
// @Success 200 {object} models.Cheque
// @Failure 404 {object} errors.ErrorResponse "CHEQUE_001 - Cheque not found"
// @Failure 409 {object} errors.ErrorResponse "CHEQUE_002 - Cheque already cleared"
// @Router /cheques/{id}/clear [post]
func (h *ChequeHandler) ClearCheque(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ChequeInvalidID)
	}

	cheque, err := h.chequeService.ClearCheque(id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, cheque)
}

// DeleteCheque removes a cheque from the register
// @Summary Delete cheque
// @Tags Cheques
// @Param id path string true "Cheque ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "CHEQUE_001 - Cheque not found"
// @Router /cheques/{id} [delete]
func (h *ChequeHandler) DeleteCheque(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ChequeInvalidID)
	}

	if err := h.chequeService.DeleteCheque(id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
