package handlers

import (
	"net/http"
	"time"

	"church-treasury/internal/repositories"
	"church-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	chequeRepo      repositories.ChequeRepositoryInterface
	movementRepo    repositories.FundMovementRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	chequeRepo repositories.ChequeRepositoryInterface,
	movementRepo repositories.FundMovementRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *HealthCheckHandler {
	return &HealthCheckHandler{
		transactionRepo: transactionRepo,
		chequeRepo:      chequeRepo,
		movementRepo:    movementRepo,
		metrics:         metrics,
	}
}

// HealthResponse is the body of a successful health check
type HealthResponse struct {
	Status      string         `json:"status"`
	Time        string         `json:"time"`
	Collections map[string]int `json:"collections"`
}

// HealthCheck reports liveness and the size of every in-memory collection
// @Summary Health check
// @Description Check API status and the in-memory store sizes
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	collections := map[string]int{
		"transactions":   h.transactionRepo.Count(),
		"cheques":        h.chequeRepo.Count(),
		"fund_movements": h.movementRepo.Count(),
	}

	for name, count := range collections {
		h.metrics.RecordGauge("store_collection_items", float64(count), map[string]string{"collection": name})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Time:        time.Now().UTC().Format(time.RFC3339),
		Collections: collections,
	})
}
