package repositories

import (
	"testing"
	"time"

	"church-treasury/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestFundMovementRepository(t *testing.T) {
	suite.Run(t, new(FundMovementRepositorySuite))
}

type FundMovementRepositorySuite struct {
	suite.Suite
	repo FundMovementRepositoryInterface
}

func (s *FundMovementRepositorySuite) SetupTest() {
	s.repo = NewFundMovementRepository()
}

func (s *FundMovementRepositorySuite) TestCreate_GetAll_Delete() {
	in := models.NewFundMovement(time.Now(), models.EntryKindInflow, decimal.NewFromInt(500), "Reforço")
	out := models.NewFundMovement(time.Now(), models.EntryKindOutflow, decimal.NewFromInt(80), "Transporte")

	s.NoError(s.repo.Create(&in))
	s.NoError(s.repo.Create(&out))
	s.Equal(2, s.repo.Count())

	all, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(all, 2)
	s.Equal(in.ID, all[0].ID)

	found, err := s.repo.GetByID(out.ID)
	s.NoError(err)
	s.Equal("Transporte", found.Description)

	s.NoError(s.repo.Delete(in.ID))
	s.Equal(1, s.repo.Count())
}

func (s *FundMovementRepositorySuite) TestNotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrFundMovementNotFound)
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrFundMovementNotFound)
}

func (s *FundMovementRepositorySuite) TestDuplicateID() {
	m := models.NewFundMovement(time.Now(), models.EntryKindInflow, decimal.NewFromInt(1), "x")
	s.NoError(s.repo.Create(&m))
	s.ErrorIs(s.repo.Create(&m), ErrDuplicateFundMovementID)
}
