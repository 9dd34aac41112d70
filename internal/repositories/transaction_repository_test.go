package repositories

import (
	"sync"
	"testing"
	"time"

	"church-treasury/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.repo = NewTransactionRepository()
}

func (s *TransactionRepositorySuite) newTransaction(kind string, amount int64) models.Transaction {
	return models.NewTransaction(
		gofakeit.DateRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
		kind,
		decimal.NewFromInt(amount),
		gofakeit.Sentence(4),
		models.CategoryOfferings,
		gofakeit.Name(),
		"",
	)
}

func (s *TransactionRepositorySuite) TestCreate_AndGetByID() {
	tx := s.newTransaction(models.EntryKindInflow, 100)

	err := s.repo.Create(&tx)
	s.NoError(err)

	found, err := s.repo.GetByID(tx.ID)
	s.NoError(err)
	s.Equal(tx.ID, found.ID)
	s.True(found.Amount.Equal(decimal.NewFromInt(100)))
	s.Equal(1, s.repo.Count())
}

func (s *TransactionRepositorySuite) TestCreate_AssignsMissingID() {
	tx := s.newTransaction(models.EntryKindOutflow, 20)
	tx.ID = uuid.Nil

	s.NoError(s.repo.Create(&tx))
	s.NotEqual(uuid.Nil, tx.ID)
}

func (s *TransactionRepositorySuite) TestCreate_DuplicateID() {
	tx := s.newTransaction(models.EntryKindInflow, 100)
	s.NoError(s.repo.Create(&tx))

	err := s.repo.Create(&tx)
	s.ErrorIs(err, ErrDuplicateTransactionID)
	s.Equal(1, s.repo.Count())
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetAll_KeepsInsertionOrder() {
	first := s.newTransaction(models.EntryKindInflow, 1)
	second := s.newTransaction(models.EntryKindInflow, 2)
	third := s.newTransaction(models.EntryKindOutflow, 3)

	for _, tx := range []*models.Transaction{&first, &second, &third} {
		s.NoError(s.repo.Create(tx))
	}

	all, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(all, 3)
	s.Equal(first.ID, all[0].ID)
	s.Equal(second.ID, all[1].ID)
	s.Equal(third.ID, all[2].ID)
}

func (s *TransactionRepositorySuite) TestGetAll_EmptyIsNotNil() {
	all, err := s.repo.GetAll()
	s.NoError(err)
	s.NotNil(all)
	s.Empty(all)
}

func (s *TransactionRepositorySuite) TestSnapshots_AreNotMutatedByLaterWrites() {
	tx := s.newTransaction(models.EntryKindInflow, 100)
	s.NoError(s.repo.Create(&tx))

	before, err := s.repo.GetAll()
	s.NoError(err)

	updated := tx
	updated.Amount = decimal.NewFromInt(999)
	s.NoError(s.repo.Update(&updated))

	other := s.newTransaction(models.EntryKindOutflow, 5)
	s.NoError(s.repo.Create(&other))

	s.Len(before, 1)
	s.True(before[0].Amount.Equal(decimal.NewFromInt(100)))

	after, _ := s.repo.GetAll()
	s.Len(after, 2)
	s.True(after[0].Amount.Equal(decimal.NewFromInt(999)))
}

func (s *TransactionRepositorySuite) TestSnapshot_WritesDoNotLeakBack() {
	tx := s.newTransaction(models.EntryKindInflow, 100)
	s.NoError(s.repo.Create(&tx))

	snapshot, _ := s.repo.GetAll()
	snapshot[0].Category = "changed"

	stored, err := s.repo.GetByID(tx.ID)
	s.NoError(err)
	s.Equal(models.CategoryOfferings, stored.Category)
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	tx := s.newTransaction(models.EntryKindInflow, 100)

	err := s.repo.Update(&tx)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	keep := s.newTransaction(models.EntryKindInflow, 1)
	drop := s.newTransaction(models.EntryKindInflow, 2)
	s.NoError(s.repo.Create(&keep))
	s.NoError(s.repo.Create(&drop))

	s.NoError(s.repo.Delete(drop.ID))

	all, _ := s.repo.GetAll()
	s.Require().Len(all, 1)
	s.Equal(keep.ID, all[0].ID)

	err := s.repo.Delete(drop.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestReplaceAll() {
	old := s.newTransaction(models.EntryKindInflow, 1)
	s.NoError(s.repo.Create(&old))

	replacement := []models.Transaction{
		s.newTransaction(models.EntryKindInflow, 10),
		s.newTransaction(models.EntryKindOutflow, 20),
	}
	s.NoError(s.repo.ReplaceAll(replacement))
	s.Equal(2, s.repo.Count())

	_, err := s.repo.GetByID(old.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	// the caller's slice is copied, not aliased
	replacement[0].Category = "changed"
	stored, _ := s.repo.GetByID(replacement[0].ID)
	s.Equal(models.CategoryOfferings, stored.Category)
}

func (s *TransactionRepositorySuite) TestReplaceAll_RejectsDuplicateIDs() {
	tx := s.newTransaction(models.EntryKindInflow, 1)

	err := s.repo.ReplaceAll([]models.Transaction{tx, tx})
	s.ErrorIs(err, ErrDuplicateTransactionID)
	s.Equal(0, s.repo.Count())
}

func (s *TransactionRepositorySuite) TestConcurrentCreates() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx := s.newTransaction(models.EntryKindInflow, 1)
			_ = s.repo.Create(&tx)
			_, _ = s.repo.GetAll()
		}()
	}
	wg.Wait()

	s.Equal(50, s.repo.Count())
}
