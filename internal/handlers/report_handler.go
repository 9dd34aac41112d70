package handlers

import (
	"bytes"
	"net/http"

	"church-treasury/internal/errors"
	"church-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the general report and its spreadsheet export
type ReportHandler struct {
	reportService services.ReportServiceInterface
	exportService services.ExportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reportService services.ReportServiceInterface,
	exportService services.ExportServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// GetGeneralReport builds the dashboard for one filter selection
// @Summary General report
// @Description Totals, monthly series, category summary, running balance and the filtered transactions
// @Tags Reports
// @Produce json
// @Param year query string false "Year or 'all' (defaults to the configured scope)"
// @Param month query int false "Month (1-12)"
// @Param category query string false "Exact category"
// @Param date_from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param sort query string false "Transaction order" Enums(amount, date, category)
// @Param direction query string false "Transaction order direction" Enums(asc, desc)
// @Param category_sort query string false "Category table order" Enums(category, net)
// @Param category_direction query string false "Category table direction" Enums(asc, desc)
// @Success 200 {object} models.GeneralReport
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "REPORT_001 - Report generation failed"
// @Router /reports/general [get]
func (h *ReportHandler) GetGeneralReport(c echo.Context) error {
	query, err := bindTransactionQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	report, err := h.reportService.GenerateReport(query)
	if err != nil {
		return sendFailure(c, errors.ReportGenerationFailed, "report generation failed", err)
	}

	return c.JSON(http.StatusOK, report)
}

// ExportGeneralReport downloads the general report as a spreadsheet
// @Summary Export general report
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} errors.ErrorResponse "REPORT_002 - Export failed"
// @Router /reports/general/export [get]
func (h *ReportHandler) ExportGeneralReport(c echo.Context) error {
	query, err := bindTransactionQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	report, err := h.reportService.GenerateReport(query)
	if err != nil {
		return sendFailure(c, errors.ReportGenerationFailed, "report generation failed", err)
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportReport(report, &buf); err != nil {
		return sendFailure(c, errors.ReportExportFailed, "report export failed", err, "client_ip", ClientIP(c))
	}

	return sendSpreadsheet(c, h.exportService.FileName("relatorio_geral", report.Period), &buf)
}
