package repositories

import (
	"time"

	"church-treasury/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for the ledger store
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	ReplaceAll(transactions []models.Transaction) error
	Count() int
}

// ChequeRepositoryInterface defines the contract for the cheque register
type ChequeRepositoryInterface interface {
	Create(cheque *models.Cheque) error
	GetByID(id uuid.UUID) (*models.Cheque, error)
	GetAll() ([]models.Cheque, error)
	GetByStatus(status string) ([]models.Cheque, error)
	ClearPending(id uuid.UUID, at time.Time) (*models.Cheque, error)
	Delete(id uuid.UUID) error
	Count() int
}

// FundMovementRepositoryInterface defines the contract for the petty-cash store
type FundMovementRepositoryInterface interface {
	Create(movement *models.FundMovement) error
	GetByID(id uuid.UUID) (*models.FundMovement, error)
	GetAll() ([]models.FundMovement, error)
	Delete(id uuid.UUID) error
	Count() int
}
