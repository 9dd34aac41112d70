package services

import (
	"io"
	"time"

	"church-treasury/internal/dto"
	"church-treasury/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionAggregatorInterface derives filtered subsets and summary series from a flat transaction list
type TransactionAggregatorInterface interface {
	Filter(transactions []models.Transaction, filters models.TransactionFilters) []models.Transaction
	Sort(transactions []models.Transaction, order models.TransactionSort) []models.Transaction
	Totals(transactions []models.Transaction) models.PeriodTotals
	MonthlySummary(transactions []models.Transaction) []models.MonthlySummary
	CategorySummary(transactions []models.Transaction) []models.CategorySummary
	SortCategorySummaries(summaries []models.CategorySummary, order models.CategorySort) []models.CategorySummary
	RunningBalance(transactions []models.Transaction) []models.RunningBalancePoint
	DistinctCategories(transactions []models.Transaction) []string
	CategoryBreakdown(transactions []models.Transaction) models.CategoryBreakdown
	Highlights(transactions []models.Transaction) models.PeriodHighlights
}

// LedgerServiceInterface defines the cash ledger operations
type LedgerServiceInterface interface {
	CreateTransaction(req *dto.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ListTransactions(query models.TransactionQuery) (*models.LedgerPage, error)
	GetCategories() ([]string, error)
}

// ReportServiceInterface builds the general report
type ReportServiceInterface interface {
	GenerateReport(query models.TransactionQuery) (*models.GeneralReport, error)
	AvailableYears() []int
}

// ChequeServiceInterface defines the cheque register operations
type ChequeServiceInterface interface {
	RegisterCheque(req *dto.CreateChequeRequest) (*models.Cheque, error)
	ClearCheque(id uuid.UUID) (*models.Cheque, error)
	DeleteCheque(id uuid.UUID) error
	ListCheques(status string) ([]models.Cheque, error)
	GetSummary() (*models.ChequeSummary, error)
}

// FundServiceInterface defines the petty-cash fund operations
type FundServiceInterface interface {
	RecordMovement(req *dto.CreateFundMovementRequest) (*models.FundMovement, error)
	DeleteMovement(id uuid.UUID) error
	ListMovements() ([]models.FundMovement, error)
	GetBalance() (*models.FundBalance, error)
}

// ExportServiceInterface renders ledger data as spreadsheets
type ExportServiceInterface interface {
	ExportReport(report *models.GeneralReport, w io.Writer) error
	ExportTransactions(transactions []models.Transaction, totals models.PeriodTotals, period string, w io.Writer) error
	FileName(prefix, period string) string
}

// SampleDataGeneratorInterface generates realistic ledger data for development
type SampleDataGeneratorInterface interface {
	GenerateTransactions(startDate, endDate time.Time, count int) []models.Transaction
	GenerateMonthlyTithes(startDate, endDate time.Time) []models.Transaction
	GenerateMonthlyBills(startDate, endDate time.Time) []models.Transaction
	GenerateCheques(startDate, endDate time.Time, count int) []models.Cheque
	GenerateFundMovements(startDate, endDate time.Time, count int) []models.FundMovement
	GenerateAmount(category string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

// SampleDataSeederInterface fills empty stores with generated history
type SampleDataSeederInterface interface {
	Seed(now time.Time, months int) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
