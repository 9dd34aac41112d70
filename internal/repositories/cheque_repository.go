package repositories

import (
	"errors"
	"fmt"
	"time"

	"church-treasury/internal/models"

	"github.com/google/uuid"
)

var (
	ErrChequeNotFound    = errors.New("cheque not found")
	ErrDuplicateChequeID = errors.New("cheque id already exists")
	// ErrDuplicateChequeNumber is returned when the register already holds the number
	ErrDuplicateChequeNumber = errors.New("cheque number already registered")
)

type chequeRepository struct {
	store *memoryCollection[models.Cheque]
}

// NewChequeRepository creates a new in-memory cheque register
func NewChequeRepository() ChequeRepositoryInterface {
	return &chequeRepository{
		store: newMemoryCollection(func(c *models.Cheque) uuid.UUID { return c.ID }),
	}
}

func (r *chequeRepository) Create(cheque *models.Cheque) error {
	if cheque.ID == uuid.Nil {
		cheque.ID = uuid.New()
	}

	err := r.store.insertUnless(*cheque, func(existing *models.Cheque) error {
		switch {
		case existing.ID == cheque.ID:
			return ErrDuplicateChequeID
		case existing.Number == cheque.Number:
			return ErrDuplicateChequeNumber
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create cheque: %w", err)
	}
	return nil
}

func (r *chequeRepository) GetByID(id uuid.UUID) (*models.Cheque, error) {
	cheque, ok := r.store.find(id)
	if !ok {
		return nil, ErrChequeNotFound
	}
	return &cheque, nil
}

func (r *chequeRepository) GetAll() ([]models.Cheque, error) {
	return r.store.snapshot(), nil
}

// GetByStatus returns the cheques in one status, keeping register order
func (r *chequeRepository) GetByStatus(status string) ([]models.Cheque, error) {
	all := r.store.snapshot()
	result := make([]models.Cheque, 0, len(all))
	for i := range all {
		if all[i].Status == status {
			result = append(result, all[i])
		}
	}
	return result, nil
}

// ClearPending clears a pending cheque at the given time. A cheque already cleared
// yields models.ErrChequeAlreadyCleared and the register is left untouched.
func (r *chequeRepository) ClearPending(id uuid.UUID, at time.Time) (*models.Cheque, error) {
	cleared, err := r.store.modify(id, func(cheque models.Cheque) (models.Cheque, error) {
		return cheque.Clear(at)
	}, ErrChequeNotFound)
	if err != nil {
		return nil, fmt.Errorf("failed to clear cheque: %w", err)
	}
	return &cleared, nil
}

func (r *chequeRepository) Delete(id uuid.UUID) error {
	if err := r.store.remove(id, ErrChequeNotFound); err != nil {
		return fmt.Errorf("failed to delete cheque: %w", err)
	}
	return nil
}

func (r *chequeRepository) Count() int {
	return r.store.count()
}
