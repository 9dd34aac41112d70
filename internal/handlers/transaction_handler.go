package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"church-treasury/internal/dto"
	"church-treasury/internal/errors"
	"church-treasury/internal/models"
	"church-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransactionHandler handles the cash ledger endpoints
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
	exportService services.ExportServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	ledgerService services.LedgerServiceInterface,
	exportService services.ExportServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		exportService: exportService,
	}
}

// ListTransactions returns the filtered ledger with its totals
// @Summary List transactions
// @Description Filter and order the ledger. Without a sort the entries keep insertion order.
// @Tags Transactions
// @Produce json
// @Param year query string false "Year or 'all'"
// @Param month query int false "Month (1-12)"
// @Param category query string false "Exact category"
// @Param date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param q query string false "Text search over description, category, responsible and notes"
// @Param inflow_only query bool false "Only inflows"
// @Param sort query string false "Sort key" Enums(amount, date, category)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.ListTransactionsResponse "Filtered ledger"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	query, err := bindTransactionQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	page, err := h.ledgerService.ListTransactions(query)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: page.Transactions,
		Totals:       page.Totals,
		Count:        page.Count,
	})
}

// CreateTransaction adds a ledger entry
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Ledger entry"
// @Success 201 {object} models.Transaction "Created entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.ledgerService.CreateTransaction(&req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// GetTransaction returns one ledger entry
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_003 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	transaction, err := h.ledgerService.GetTransaction(id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction replaces a ledger entry keeping its id
// @Summary Replace transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.TransactionRequest true "Ledger entry"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.ledgerService.UpdateTransaction(id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a ledger entry
// @Summary Delete transaction
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.ledgerService.DeleteTransaction(id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCategories lists the categories used in the ledger plus the built-in suggestions
// @Summary List categories
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /transactions/categories [get]
func (h *TransactionHandler) GetCategories(c echo.Context) error {
	categories, err := h.ledgerService.GetCategories()
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: categories,
		Suggested:  models.SuggestedCategories(),
	})
}

// ExportTransactions downloads the filtered ledger as a spreadsheet
// @Summary Export transactions
// @Tags Transactions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} errors.ErrorResponse "REPORT_002 - Export failed"
// @Router /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	query, err := bindTransactionQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	page, err := h.ledgerService.ListTransactions(query)
	if err != nil {
		return sendServiceError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportTransactions(page.Transactions, page.Totals, page.Period, &buf); err != nil {
		return sendFailure(c, errors.ReportExportFailed, "transaction export failed", err, "client_ip", ClientIP(c))
	}

	return sendSpreadsheet(c, h.exportService.FileName("entradas_saidas", page.Period), &buf)
}

// sendSpreadsheet writes an XLSX attachment
func sendSpreadsheet(c echo.Context, fileName string, buf *bytes.Buffer) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
