package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidMovementAmount = errors.New("movement amount must be positive")

// FundMovement is an entry of the petty-cash fund (fundo de maneio)
type FundMovement struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewFundMovement builds a movement with a fresh identifier
func NewFundMovement(date time.Time, kind string, amount decimal.Decimal, description string) FundMovement {
	return FundMovement{
		ID:          uuid.New(),
		Date:        CalendarDay(date),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate validates the movement fields
func (m *FundMovement) Validate() error {
	if m.Date.IsZero() {
		return ErrDateRequired
	}

	if !IsValidEntryKind(m.Kind) {
		return ErrInvalidEntryKind
	}

	if m.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidMovementAmount
	}

	if strings.TrimSpace(m.Description) == "" {
		return ErrDescriptionRequired
	}

	return nil
}

// AsTransaction views the movement as a ledger entry so the aggregator can sum it
func (m *FundMovement) AsTransaction() Transaction {
	return Transaction{
		ID:          m.ID,
		Date:        m.Date,
		Kind:        m.Kind,
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// FundBalance is the petty-cash position
type FundBalance struct {
	Inflow        decimal.Decimal `json:"inflow"`
	Outflow       decimal.Decimal `json:"outflow"`
	Balance       decimal.Decimal `json:"balance"`
	MovementCount int             `json:"movement_count"`
}
