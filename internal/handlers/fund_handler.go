package handlers

import (
	"net/http"

	"church-treasury/internal/dto"
	"church-treasury/internal/errors"
	"church-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

// FundHandler handles the petty-cash fund endpoints
type FundHandler struct {
	fundService services.FundServiceInterface
}

// NewFundHandler creates a new fund handler
func NewFundHandler(fundService services.FundServiceInterface) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// ListMovements returns the fund movements, oldest first
// @Summary List fund movements
// @Tags Fund
// @Produce json
// @Success 200 {array} models.FundMovement
// @Router /fund/movements [get]
func (h *FundHandler) ListMovements(c echo.Context) error {
	movements, err := h.fundService.ListMovements()
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, movements)
}

// RecordMovement adds a replenishment or an expense
// @Summary Record fund movement
// @Tags Fund
// @Accept json
// @Produce json
// @Param request body dto.CreateFundMovementRequest true "Movement"
// @Success 201 {object} models.FundMovement
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /fund/movements [post]
func (h *FundHandler) RecordMovement(c echo.Context) error {
	var req dto.CreateFundMovementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	movement, err := h.fundService.RecordMovement(&req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, movement)
}

// DeleteMovement removes a fund movement
// @Summary Delete fund movement
// @Tags Fund
// @Param id path string true "Movement ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "FUND_001 - Movement not found"
// @Router /fund/movements/{id} [delete]
func (h *FundHandler) DeleteMovement(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.FundMovementInvalidID)
	}

	if err := h.fundService.DeleteMovement(id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBalance returns the fund totals and current balance
// @Summary Fund balance
// @Tags Fund
// @Produce json
// @Success 200 {object} models.FundBalance
// @Router /fund/balance [get]
func (h *FundHandler) GetBalance(c echo.Context) error {
	balance, err := h.fundService.GetBalance()
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, balance)
}
