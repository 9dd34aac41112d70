package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes
type Handlers struct {
	Health       *HealthCheckHandler
	Transactions *TransactionHandler
	Reports      *ReportHandler
	Cheques      *ChequeHandler
	Fund         *FundHandler
	// Dev is mounted only when set
	Dev          *DevHandler
}

// RegisterRoutes mounts the health check and the /api/v1 endpoints
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1")

	transactions := api.Group("/transactions")
	transactions.GET("", h.Transactions.ListTransactions)
	transactions.POST("", h.Transactions.CreateTransaction)
	transactions.GET("/categories", h.Transactions.GetCategories)
	transactions.GET("/export", h.Transactions.ExportTransactions)
	transactions.GET("/:id", h.Transactions.GetTransaction)
	transactions.PUT("/:id", h.Transactions.UpdateTransaction)
	transactions.DELETE("/:id", h.Transactions.DeleteTransaction)

	reports := api.Group("/reports")
	reports.GET("/general", h.Reports.GetGeneralReport)
	reports.GET("/general/export", h.Reports.ExportGeneralReport)

	cheques := api.Group("/cheques")
	cheques.GET("", h.Cheques.ListCheques)
	cheques.POST("", h.Cheques.RegisterCheque)
	cheques.GET("/summary", h.Cheques.GetSummary)
	cheques.POST("/:id/clear", h.Cheques.ClearCheque)
	cheques.DELETE("/:id", h.Cheques.DeleteCheque)

	fund := api.Group("/fund")
	fund.GET("/movements", h.Fund.ListMovements)
	fund.POST("/movements", h.Fund.RecordMovement)
	fund.DELETE("/movements/:id", h.Fund.DeleteMovement)
	fund.GET("/balance", h.Fund.GetBalance)

	if h.Dev != nil {
		api.POST("/dev/sample-data", h.Dev.GenerateSampleData)
	}
}
