package services

import (
	"fmt"
	"log/slog"
	"time"

	"church-treasury/internal/models"
	"church-treasury/internal/repositories"
)

// SampleDataSeeder fills empty stores with generated data for development
type SampleDataSeeder struct {
	generator       SampleDataGeneratorInterface
	transactionRepo repositories.TransactionRepositoryInterface
	chequeRepo      repositories.ChequeRepositoryInterface
	movementRepo    repositories.FundMovementRepositoryInterface
}

func NewSampleDataSeeder(
	generator SampleDataGeneratorInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	chequeRepo repositories.ChequeRepositoryInterface,
	movementRepo repositories.FundMovementRepositoryInterface,
) *SampleDataSeeder {
	return &SampleDataSeeder{
		generator:       generator,
		transactionRepo: transactionRepo,
		chequeRepo:      chequeRepo,
		movementRepo:    movementRepo,
	}
}

// Seed generates the given number of months of history ending at now.
// Stores that already hold data are left untouched.
func (s *SampleDataSeeder) Seed(now time.Time, months int) error {
	endDate := models.CalendarDay(now)
	startDate := endDate.AddDate(0, -months, 0)

	if s.transactionRepo.Count() == 0 {
		transactions := s.generator.GenerateMonthlyTithes(startDate, endDate)
		transactions = append(transactions, s.generator.GenerateMonthlyBills(startDate, endDate)...)
		transactions = append(transactions, s.generator.GenerateTransactions(startDate, endDate, months*8)...)

		if err := s.transactionRepo.ReplaceAll(transactions); err != nil {
			return fmt.Errorf("failed to seed transactions: %w", err)
		}
		slog.Info("seeded transactions", "count", len(transactions))
	}

	if s.chequeRepo.Count() == 0 {
		cheques := s.generator.GenerateCheques(startDate, endDate, months*2)
		for i := range cheques {
			if err := s.chequeRepo.Create(&cheques[i]); err != nil {
				return fmt.Errorf("failed to seed cheques: %w", err)
			}
		}
		slog.Info("seeded cheques", "count", len(cheques))
	}

	if s.movementRepo.Count() == 0 {
		movements := s.generator.GenerateFundMovements(startDate, endDate, months*3)
		for i := range movements {
			if err := s.movementRepo.Create(&movements[i]); err != nil {
				return fmt.Errorf("failed to seed fund movements: %w", err)
			}
		}
		slog.Info("seeded fund movements", "count", len(movements))
	}

	return nil
}
