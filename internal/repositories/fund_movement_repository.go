package repositories

import (
	"errors"
	"fmt"

	"church-treasury/internal/models"

	"github.com/google/uuid"
)

var (
	ErrFundMovementNotFound    = errors.New("fund movement not found")
	ErrDuplicateFundMovementID = errors.New("fund movement id already exists")
)

type fundMovementRepository struct {
	store *memoryCollection[models.FundMovement]
}

// NewFundMovementRepository creates a new in-memory petty-cash store
func NewFundMovementRepository() FundMovementRepositoryInterface {
	return &fundMovementRepository{
		store: newMemoryCollection(func(m *models.FundMovement) uuid.UUID { return m.ID }),
	}
}

func (r *fundMovementRepository) Create(movement *models.FundMovement) error {
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}

	if err := r.store.insert(*movement, ErrDuplicateFundMovementID); err != nil {
		return fmt.Errorf("failed to create fund movement: %w", err)
	}
	return nil
}

func (r *fundMovementRepository) GetByID(id uuid.UUID) (*models.FundMovement, error) {
	movement, ok := r.store.find(id)
	if !ok {
		return nil, ErrFundMovementNotFound
	}
	return &movement, nil
}

func (r *fundMovementRepository) GetAll() ([]models.FundMovement, error) {
	return r.store.snapshot(), nil
}

func (r *fundMovementRepository) Delete(id uuid.UUID) error {
	if err := r.store.remove(id, ErrFundMovementNotFound); err != nil {
		return fmt.Errorf("failed to delete fund movement: %w", err)
	}
	return nil
}

func (r *fundMovementRepository) Count() int {
	return r.store.count()
}
