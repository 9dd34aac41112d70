package handlers

import (
	"fmt"
	"net/http"
	"time"

	"church-treasury/internal/errors"
	"church-treasury/internal/repositories"
	"church-treasury/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSampleMonths = 6
	maxSampleMonths     = 36
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder          services.SampleDataSeederInterface
	transactionRepo repositories.TransactionRepositoryInterface
	chequeRepo      repositories.ChequeRepositoryInterface
	movementRepo    repositories.FundMovementRepositoryInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	seeder services.SampleDataSeederInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	chequeRepo repositories.ChequeRepositoryInterface,
	movementRepo repositories.FundMovementRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		seeder:          seeder,
		transactionRepo: transactionRepo,
		chequeRepo:      chequeRepo,
		movementRepo:    movementRepo,
		now:             time.Now,
	}
}

// GenerateSampleData fills the empty stores with generated church ledger history
//
// Method: POST /api/v1/dev/sample-data
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 6, max: 36)
//
// Success Response: 200 OK
//   - message: Success message
//   - collections: Size of every store after seeding
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	months := getIntQueryParam(c, "months", defaultSampleMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSampleMonths {
		months = maxSampleMonths
	}

	if err := h.seeder.Seed(h.now(), months); err != nil {
		return sendFailure(c, errors.SystemStoreError, "sample data generation failed", err, "months", months)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "sample data generated successfully",
		"months":  months,
		"collections": map[string]int{
			"transactions":   h.transactionRepo.Count(),
			"cheques":        h.chequeRepo.Count(),
			"fund_movements": h.movementRepo.Count(),
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
