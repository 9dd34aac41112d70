package services

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"church-treasury/internal/dto"
	"church-treasury/internal/models"
	"church-treasury/internal/repositories"
	"church-treasury/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	aggregator      TransactionAggregatorInterface
	metrics         MetricsRecorderInterface
	yearScope       string
	logger          *slog.Logger
	now             func() time.Time
}

// NewLedgerService creates the cash ledger service.
// yearScope is the year applied to list requests that do not choose one.
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	aggregator TransactionAggregatorInterface,
	metrics MetricsRecorderInterface,
	yearScope string,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		aggregator:      aggregator,
		metrics:         metrics,
		yearScope:       yearScope,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateTransaction validates the request and appends a new ledger entry
func (s *ledgerService) CreateTransaction(req *dto.TransactionRequest) (*models.Transaction, error) {
	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		s.recordOperation("create", "invalid")
		return nil, err
	}

	transaction := models.NewTransaction(
		date,
		req.Kind,
		amount,
		strings.TrimSpace(req.Description),
		strings.TrimSpace(req.Category),
		strings.TrimSpace(req.Responsible),
		strings.TrimSpace(req.Notes),
	)
	if err := transaction.Validate(); err != nil {
		s.recordOperation("create", "invalid")
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.transactionRepo.Create(&transaction); err != nil {
		s.recordOperation("create", "failed")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.recordOperation("create", "success")
	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"kind", transaction.Kind,
		"amount", transaction.Amount.String(),
		"category", transaction.Category,
	)

	return &transaction, nil
}

// UpdateTransaction replaces the entry with the given ID, keeping its identity and creation time
func (s *ledgerService) UpdateTransaction(id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		s.recordOperation("update", "invalid")
		return nil, err
	}

	updated := models.Transaction{
		ID:          existing.ID,
		Date:        models.CalendarDay(date),
		Kind:        req.Kind,
		Amount:      amount,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Responsible: strings.TrimSpace(req.Responsible),
		Notes:       strings.TrimSpace(req.Notes),
		CreatedAt:   existing.CreatedAt,
	}
	if err := updated.Validate(); err != nil {
		s.recordOperation("update", "invalid")
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.transactionRepo.Update(&updated); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		s.recordOperation("update", "failed")
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.recordOperation("update", "success")
	s.logger.Info("transaction updated", "transaction_id", updated.ID)

	return &updated, nil
}

// DeleteTransaction removes the entry with the given ID
func (s *ledgerService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		s.recordOperation("delete", "failed")
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.recordOperation("delete", "success")
	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

func (s *ledgerService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions filters the ledger, optionally sorts it, and totals the filtered set.
// Without an explicit sort the ledger keeps insertion order.
func (s *ledgerService) ListTransactions(query models.TransactionQuery) (*models.LedgerPage, error) {
	all, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filters := query.EffectiveFilters(s.yearScope, s.now().UTC())
	filtered := s.aggregator.Filter(all, filters)
	if query.Sort != nil {
		filtered = s.aggregator.Sort(filtered, *query.Sort)
	}

	return &models.LedgerPage{
		Period:       filters.Describe(),
		Transactions: filtered,
		Totals:       s.aggregator.Totals(filtered),
		Count:        len(filtered),
	}, nil
}

// GetCategories returns every category in use, sorted for display as filter choices
func (s *ledgerService) GetCategories() ([]string, error) {
	all, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categories := s.aggregator.DistinctCategories(all)
	slices.Sort(categories)
	return categories, nil
}

func (s *ledgerService) recordOperation(operation, status string) {
	s.metrics.IncrementCounter("ledger_operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
}

// parseDateAndAmount converts the wire representation of a dated amount
func parseDateAndAmount(rawDate, rawAmount string) (time.Time, decimal.Decimal, error) {
	date, err := time.Parse(validation.DateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return time.Time{}, decimal.Zero, ErrInvalidDate
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return time.Time{}, decimal.Zero, ErrInvalidAmount
	}

	return date, amount, nil
}
