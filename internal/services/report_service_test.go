package services

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"church-treasury/internal/models"
	"church-treasury/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics             *recordingMetrics
	service             *reportService
	now                 time.Time
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.now = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

	s.service = NewReportService(s.mockTransactionRepo, NewTransactionAggregator(), s.metrics, models.YearScopeCurrent, 5, discardLogger()).(*reportService)
	s.service.now = func() time.Time { return s.now }
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportServiceTestSuite) ledger() []models.Transaction {
	return []models.Transaction{
		txn(models.EntryKindInflow, "100", day(2024, time.January, 5), models.CategoryTithes),
		txn(models.EntryKindOutflow, "30", day(2024, time.January, 10), models.CategoryUtilities),
		txn(models.EntryKindInflow, "50", day(2024, time.February, 1), models.CategoryOfferings),
		txn(models.EntryKindOutflow, "500", day(2023, time.December, 24), models.CategoryMissions),
	}
}

func (s *ReportServiceTestSuite) TestGenerateReport_DefaultsToCurrentYear() {
	ledger := s.ledger()
	s.mockTransactionRepo.EXPECT().GetAll().Return(ledger, nil)

	report, err := s.service.GenerateReport(models.TransactionQuery{})

	s.Require().NoError(err)
	s.Equal("2024", report.Period)
	s.Equal(2024, *report.Filters.Year)
	s.Equal(3, report.TransactionCount)
	s.True(decimal.NewFromInt(120).Equal(report.Totals.Balance))
	s.Len(report.Monthly, 12)
	s.True(decimal.NewFromInt(70).Equal(report.Monthly[0].Balance))

	// default order is newest first
	s.Equal([]uuid.UUID{ledger[2].ID, ledger[1].ID, ledger[0].ID}, ids(report.Transactions))
	s.Equal(models.SortKeyDate, report.Filters.SortKey)
	s.Equal(models.SortDirectionDescending, report.Filters.SortDir)

	s.Require().Len(report.RunningBalance, 3)
	s.True(decimal.NewFromInt(120).Equal(report.RunningBalance[2].CumulativeBalance))

	s.Equal(3, report.Highlights.Count)
	s.True(decimal.NewFromInt(100).Equal(report.Highlights.LargestInflow))

	s.Equal(s.now, report.GeneratedAt)
	s.Equal([]int{2024, 2023, 2022, 2021, 2020}, report.AvailableYears)
}

func (s *ReportServiceTestSuite) TestGenerateReport_AllYears() {
	s.mockTransactionRepo.EXPECT().GetAll().Return(s.ledger(), nil)

	report, err := s.service.GenerateReport(models.TransactionQuery{AllYears: true})

	s.Require().NoError(err)
	s.Equal("Todo o período", report.Period)
	s.Nil(report.Filters.Year)
	s.Equal(4, report.TransactionCount)
	s.True(decimal.NewFromInt(-380).Equal(report.Totals.Balance))
}

func (s *ReportServiceTestSuite) TestGenerateReport_CategoryChoicesCoverWholeLedger() {
	s.mockTransactionRepo.EXPECT().GetAll().Return(s.ledger(), nil)

	report, err := s.service.GenerateReport(models.TransactionQuery{
		Filters: models.TransactionFilters{Year: models.IntPtr(2024), Month: models.IntPtr(2), Category: models.CategoryOfferings},
	})

	s.Require().NoError(err)
	s.Equal("Fevereiro/2024 - Categoria: Ofertas", report.Period)
	s.Equal(1, report.TransactionCount)
	s.Equal([]string{
		models.CategoryTithes,
		models.CategoryMissions,
		models.CategoryOfferings,
		models.CategoryUtilities,
	}, report.CategoryChoices)
}

func (s *ReportServiceTestSuite) TestGenerateReport_CustomOrderings() {
	ledger := s.ledger()
	s.mockTransactionRepo.EXPECT().GetAll().Return(ledger, nil)

	report, err := s.service.GenerateReport(models.TransactionQuery{
		AllYears:     true,
		Sort:         &models.TransactionSort{Key: models.SortKeyAmount, Direction: models.SortDirectionAscending},
		CategorySort: &models.CategorySort{Key: models.CategorySortKeyNet, Direction: models.SortDirectionDescending},
	})

	s.Require().NoError(err)
	s.Equal([]uuid.UUID{ledger[1].ID, ledger[2].ID, ledger[0].ID, ledger[3].ID}, ids(report.Transactions))

	s.Require().Len(report.Categories, 4)
	s.Equal(models.CategoryTithes, report.Categories[0].Category)
	s.Equal(models.CategoryMissions, report.Categories[3].Category)
	s.Equal(models.CategorySortKeyNet, report.Filters.CategorySort)
}

func (s *ReportServiceTestSuite) TestGenerateReport_RecordsMetrics() {
	s.mockTransactionRepo.EXPECT().GetAll().Return(s.ledger(), nil)

	_, err := s.service.GenerateReport(models.TransactionQuery{})

	s.Require().NoError(err)
	s.Contains(s.metrics.counters, "report_generated.success")
	s.Contains(s.metrics.timings, "report_generation")
	s.Equal(3.0, s.metrics.gauges["report_transactions"])
}

func (s *ReportServiceTestSuite) TestGenerateReport_DateRangeKeepsYearDefault() {
	ledger := s.ledger()
	s.mockTransactionRepo.EXPECT().GetAll().Return(ledger, nil)

	report, err := s.service.GenerateReport(models.TransactionQuery{
		Filters: models.TransactionFilters{
			DateFrom: models.TimePtr(day(2023, time.December, 1)),
			DateTo:   models.TimePtr(day(2024, time.January, 31)),
		},
	})

	s.Require().NoError(err)
	s.Equal(2024, *report.Filters.Year)
	s.Equal(2, report.TransactionCount)
	s.ElementsMatch([]uuid.UUID{ledger[0].ID, ledger[1].ID}, ids(report.Transactions))
}

func (s *ReportServiceTestSuite) TestGenerateReport_LogsThroughInjectedLogger() {
	var buf bytes.Buffer
	service := NewReportService(s.mockTransactionRepo, NewTransactionAggregator(), s.metrics, models.YearScopeCurrent, 5,
		slog.New(slog.NewJSONHandler(&buf, nil))).(*reportService)
	service.now = func() time.Time { return s.now }

	s.mockTransactionRepo.EXPECT().GetAll().Return(s.ledger(), nil)
	_, err := service.GenerateReport(models.TransactionQuery{})
	s.Require().NoError(err)
	s.Contains(buf.String(), `"msg":"report generated"`)
	s.Contains(buf.String(), `"transaction_count":3`)

	buf.Reset()
	s.mockTransactionRepo.EXPECT().GetAll().Return(nil, errors.New("unavailable"))
	_, err = service.GenerateReport(models.TransactionQuery{})
	s.Require().Error(err)
	s.Contains(buf.String(), `"level":"ERROR"`)
	s.Contains(buf.String(), "unavailable")
}

func (s *ReportServiceTestSuite) TestGenerateReport_StoreError() {
	s.mockTransactionRepo.EXPECT().GetAll().Return(nil, errors.New("unavailable"))

	report, err := s.service.GenerateReport(models.TransactionQuery{})

	s.Error(err)
	s.Nil(report)
	s.Contains(s.metrics.counters, "report_generated.failed")
}

func (s *ReportServiceTestSuite) TestGenerateReport_EmptyLedger() {
	s.mockTransactionRepo.EXPECT().GetAll().Return([]models.Transaction{}, nil)

	report, err := s.service.GenerateReport(models.TransactionQuery{})

	s.Require().NoError(err)
	s.Zero(report.TransactionCount)
	s.Len(report.Monthly, 12)
	s.Empty(report.Categories)
	s.Empty(report.RunningBalance)
	s.NotNil(report.Transactions)
	s.True(report.Totals.Balance.IsZero())
}

func (s *ReportServiceTestSuite) TestAvailableYears_DefaultCount() {
	service := NewReportService(s.mockTransactionRepo, NewTransactionAggregator(), s.metrics, models.YearScopeAll, 0, discardLogger()).(*reportService)
	service.now = func() time.Time { return s.now }

	s.Equal([]int{2024, 2023, 2022, 2021, 2020}, service.AvailableYears())
}
