package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"church-treasury/internal/dto"
	"church-treasury/internal/models"
	"church-treasury/internal/repositories"

	"github.com/google/uuid"
)

var ErrFundMovementNotFound = errors.New("fund movement not found")

type fundService struct {
	movementRepo repositories.FundMovementRepositoryInterface
	aggregator   TransactionAggregatorInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewFundService creates the petty-cash fund service. Balances go through the
// aggregator so the fund and the report apply the same signed-sum rule.
func NewFundService(
	movementRepo repositories.FundMovementRepositoryInterface,
	aggregator TransactionAggregatorInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) FundServiceInterface {
	return &fundService{
		movementRepo: movementRepo,
		aggregator:   aggregator,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *fundService) RecordMovement(req *dto.CreateFundMovementRequest) (*models.FundMovement, error) {
	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	movement := models.NewFundMovement(date, req.Kind, amount, strings.TrimSpace(req.Description))
	if err := movement.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.movementRepo.Create(&movement); err != nil {
		return nil, fmt.Errorf("failed to record fund movement: %w", err)
	}

	s.metrics.IncrementCounter("fund_movement", map[string]string{"kind": movement.Kind})
	s.logger.Info("fund movement recorded",
		"movement_id", movement.ID,
		"kind", movement.Kind,
		"amount", movement.Amount.String(),
	)

	return &movement, nil
}

func (s *fundService) DeleteMovement(id uuid.UUID) error {
	if err := s.movementRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrFundMovementNotFound) {
			return ErrFundMovementNotFound
		}
		return fmt.Errorf("failed to delete fund movement: %w", err)
	}

	s.logger.Info("fund movement deleted", "movement_id", id)
	return nil
}

// ListMovements returns the movements in date order, oldest first
func (s *fundService) ListMovements() ([]models.FundMovement, error) {
	movements, err := s.movementRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list fund movements: %w", err)
	}

	byID := make(map[uuid.UUID]models.FundMovement, len(movements))
	for i := range movements {
		byID[movements[i].ID] = movements[i]
	}

	ordered := s.aggregator.Sort(asTransactions(movements), models.TransactionSort{
		Key:       models.SortKeyDate,
		Direction: models.SortDirectionAscending,
	})

	result := make([]models.FundMovement, 0, len(ordered))
	for i := range ordered {
		result = append(result, byID[ordered[i].ID])
	}
	return result, nil
}

func (s *fundService) GetBalance() (*models.FundBalance, error) {
	movements, err := s.movementRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list fund movements: %w", err)
	}

	totals := s.aggregator.Totals(asTransactions(movements))

	s.metrics.RecordGauge("fund_balance", totals.Balance.InexactFloat64(), nil)

	return &models.FundBalance{
		Inflow:        totals.Inflow,
		Outflow:       totals.Outflow,
		Balance:       totals.Balance,
		MovementCount: len(movements),
	}, nil
}

func asTransactions(movements []models.FundMovement) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(movements))
	for i := range movements {
		transactions = append(transactions, movements[i].AsTransaction())
	}
	return transactions
}
