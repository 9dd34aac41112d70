package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"church-treasury/internal/dto"
	"church-treasury/internal/models"
	"church-treasury/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrChequeNotFound        = errors.New("cheque not found")
	ErrChequeAlreadyCleared  = errors.New("cheque already cleared")
	ErrDuplicateChequeNumber = errors.New("cheque number already registered")
	ErrInvalidChequeStatus   = errors.New("invalid cheque status")
)

type chequeService struct {
	chequeRepo repositories.ChequeRepositoryInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	now        func() time.Time
}

// NewChequeService creates the cheque register service
func NewChequeService(
	chequeRepo repositories.ChequeRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ChequeServiceInterface {
	return &chequeService{
		chequeRepo: chequeRepo,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterCheque records an issued cheque as pending. Cheque numbers are unique in the register.
func (s *chequeService) RegisterCheque(req *dto.CreateChequeRequest) (*models.Cheque, error) {
	issueDate, amount, err := parseDateAndAmount(req.IssueDate, req.Amount)
	if err != nil {
		return nil, err
	}

	cheque := models.NewCheque(strings.TrimSpace(req.Number), amount, strings.TrimSpace(req.Beneficiary), issueDate)
	if err := cheque.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.chequeRepo.Create(&cheque); err != nil {
		if errors.Is(err, repositories.ErrDuplicateChequeNumber) {
			return nil, ErrDuplicateChequeNumber
		}
		return nil, fmt.Errorf("failed to register cheque: %w", err)
	}

	s.metrics.IncrementCounter("cheque_operation", map[string]string{"operation": "register"})
	s.logger.Info("cheque registered",
		"cheque_id", cheque.ID,
		"number", cheque.Number,
		"amount", cheque.Amount.String(),
	)

	return &cheque, nil
}

// ClearCheque marks a pending cheque as cleared by the bank
func (s *chequeService) ClearCheque(id uuid.UUID) (*models.Cheque, error) {
	cleared, err := s.chequeRepo.ClearPending(id, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrChequeNotFound):
			return nil, ErrChequeNotFound
		case errors.Is(err, models.ErrChequeAlreadyCleared):
			return nil, ErrChequeAlreadyCleared
		}
		return nil, fmt.Errorf("failed to clear cheque: %w", err)
	}

	s.metrics.IncrementCounter("cheque_operation", map[string]string{"operation": "clear"})
	s.logger.Info("cheque cleared", "cheque_id", cleared.ID, "number", cleared.Number)

	return cleared, nil
}

func (s *chequeService) DeleteCheque(id uuid.UUID) error {
	if err := s.chequeRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrChequeNotFound) {
			return ErrChequeNotFound
		}
		return fmt.Errorf("failed to delete cheque: %w", err)
	}

	s.metrics.IncrementCounter("cheque_operation", map[string]string{"operation": "delete"})
	s.logger.Info("cheque deleted", "cheque_id", id)
	return nil
}

// ListCheques returns the register, optionally restricted to one status
func (s *chequeService) ListCheques(status string) ([]models.Cheque, error) {
	if status == "" {
		cheques, err := s.chequeRepo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list cheques: %w", err)
		}
		return cheques, nil
	}

	if !models.IsValidChequeStatus(status) {
		return nil, ErrInvalidChequeStatus
	}

	cheques, err := s.chequeRepo.GetByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list cheques: %w", err)
	}
	return cheques, nil
}

// GetSummary counts and sums the register by status
func (s *chequeService) GetSummary() (*models.ChequeSummary, error) {
	cheques, err := s.chequeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cheques: %w", err)
	}

	summary := &models.ChequeSummary{
		PendingAmount: decimal.Zero,
		ClearedAmount: decimal.Zero,
		TotalAmount:   decimal.Zero,
	}

	for i := range cheques {
		cheque := &cheques[i]
		if cheque.IsCleared() {
			summary.ClearedCount++
			summary.ClearedAmount = summary.ClearedAmount.Add(cheque.Amount)
		} else {
			summary.PendingCount++
			summary.PendingAmount = summary.PendingAmount.Add(cheque.Amount)
		}
	}

	summary.TotalCount = len(cheques)
	summary.TotalAmount = summary.PendingAmount.Add(summary.ClearedAmount)

	s.metrics.RecordGauge("cheques_pending", float64(summary.PendingCount), nil)

	return summary, nil
}
