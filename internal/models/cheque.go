package models

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ChequeStatusPending = "pending"
	ChequeStatusCleared = "cleared"
)

var (
	ErrInvalidChequeStatus  = errors.New("invalid cheque status")
	ErrInvalidChequeAmount  = errors.New("cheque amount must be positive")
	ErrChequeAlreadyCleared = errors.New("cheque already cleared")
)

// Cheque is a cheque issued by the treasury and tracked until the bank clears it
type Cheque struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	Beneficiary string          `json:"beneficiary"`
	IssueDate   time.Time       `json:"issue_date"`
	ClearedAt   *time.Time      `json:"cleared_at"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewCheque registers a pending cheque
func NewCheque(number string, amount decimal.Decimal, beneficiary string, issueDate time.Time) Cheque {
	return Cheque{
		ID:          uuid.New(),
		Number:      number,
		Amount:      amount,
		Beneficiary: beneficiary,
		IssueDate:   CalendarDay(issueDate),
		Status:      ChequeStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate validates the cheque fields
func (c *Cheque) Validate() error {
	if strings.TrimSpace(c.Number) == "" {
		return errors.New("cheque number is required")
	}

	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidChequeAmount
	}

	if strings.TrimSpace(c.Beneficiary) == "" {
		return errors.New("beneficiary is required")
	}

	if c.IssueDate.IsZero() {
		return ErrDateRequired
	}

	if !IsValidChequeStatus(c.Status) {
		return ErrInvalidChequeStatus
	}

	return nil
}

// IsPending returns true if the cheque has not been cleared yet
func (c *Cheque) IsPending() bool {
	return c.Status == ChequeStatusPending
}

// IsCleared returns true if the bank has cleared the cheque
func (c *Cheque) IsCleared() bool {
	return c.Status == ChequeStatusCleared
}

// Clear returns a copy of the cheque marked as cleared at the given instant
func (c Cheque) Clear(at time.Time) (Cheque, error) {
	if !c.CanTransitionTo(ChequeStatusCleared) {
		return c, ErrChequeAlreadyCleared
	}

	clearedAt := at.UTC()
	c.Status = ChequeStatusCleared
	c.ClearedAt = &clearedAt
	return c, nil
}

// CanTransitionTo checks if a cheque can transition to a new status
func (c *Cheque) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		ChequeStatusPending: {ChequeStatusCleared},
		ChequeStatusCleared: {},
	}

	allowedStatuses, exists := validTransitions[c.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// IsValidChequeStatus checks if the cheque status is valid
func IsValidChequeStatus(status string) bool {
	switch status {
	case ChequeStatusPending, ChequeStatusCleared:
		return true
	default:
		return false
	}
}

// ChequeSummary counts and sums cheques by status
type ChequeSummary struct {
	PendingCount  int             `json:"pending_count"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	ClearedCount  int             `json:"cleared_count"`
	ClearedAmount decimal.Decimal `json:"cleared_amount"`
	TotalCount    int             `json:"total_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
