package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EntryKindInflow  = "inflow"
	EntryKindOutflow = "outflow"
)

var (
	ErrInvalidEntryKind    = errors.New("invalid entry kind")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrDateRequired        = errors.New("date is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrResponsibleRequired = errors.New("responsible is required")
)

// Transaction is a single cash entry of the treasury ledger
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Responsible string          `json:"responsible"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTransaction builds a transaction with a fresh identifier and a day-normalized date
func NewTransaction(date time.Time, kind string, amount decimal.Decimal, description, category, responsible, notes string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Date:        CalendarDay(date),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Category:    category,
		Responsible: responsible,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks the fields the creation form requires
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrDateRequired
	}

	if !IsValidEntryKind(t.Kind) {
		return ErrInvalidEntryKind
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryRequired
	}

	if strings.TrimSpace(t.Responsible) == "" {
		return ErrResponsibleRequired
	}

	return nil
}

// IsInflow returns true if the entry adds to the balance
func (t *Transaction) IsInflow() bool {
	return t.Kind == EntryKindInflow
}

// SignedAmount returns +amount for inflows and -amount for anything else
func (t *Transaction) SignedAmount() decimal.Decimal {
	return SignedAmount(t.Kind, t.Amount)
}

// SignedAmount applies the balance sign rule shared by ledger entries and fund movements
func SignedAmount(kind string, amount decimal.Decimal) decimal.Decimal {
	if kind == EntryKindInflow {
		return amount
	}
	return amount.Neg()
}

// IsValidEntryKind checks if the entry kind is valid
func IsValidEntryKind(kind string) bool {
	switch kind {
	case EntryKindInflow, EntryKindOutflow:
		return true
	default:
		return false
	}
}

// CalendarDay drops the time of day, keeping the calendar date the value was expressed in
func CalendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
