package repositories

import (
	"errors"
	"fmt"

	"church-treasury/internal/models"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrDuplicateTransactionID = errors.New("transaction id already exists")
)

// transactionRepository implements TransactionRepositoryInterface in memory
type transactionRepository struct {
	store *memoryCollection[models.Transaction]
}

// NewTransactionRepository creates a new in-memory ledger store
func NewTransactionRepository() TransactionRepositoryInterface {
	return &transactionRepository{
		store: newMemoryCollection(func(t *models.Transaction) uuid.UUID { return t.ID }),
	}
}

// Create appends a transaction to the ledger
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}

	if err := r.store.insert(*transaction, ErrDuplicateTransactionID); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction, ok := r.store.find(id)
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return &transaction, nil
}

// GetAll returns a snapshot of the ledger in insertion order
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	return r.store.snapshot(), nil
}

// Update replaces the transaction carrying the same ID
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.store.swap(*transaction, ErrTransactionNotFound); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction from the ledger
func (r *transactionRepository) Delete(id uuid.UUID) error {
	if err := r.store.remove(id, ErrTransactionNotFound); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// ReplaceAll swaps the whole ledger, rejecting collections with repeated IDs
func (r *transactionRepository) ReplaceAll(transactions []models.Transaction) error {
	if err := r.store.replaceAll(transactions, ErrDuplicateTransactionID); err != nil {
		return fmt.Errorf("failed to replace transactions: %w", err)
	}
	return nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count() int {
	return r.store.count()
}
