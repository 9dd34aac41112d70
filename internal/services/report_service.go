package services

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"church-treasury/internal/models"
	"church-treasury/internal/repositories"
)

const DefaultAvailableYears = 5

type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	aggregator      TransactionAggregatorInterface
	metrics         MetricsRecorderInterface
	yearScope       string
	yearsShown      int
	logger          *slog.Logger
	now             func() time.Time
}

// NewReportService creates the general report builder.
// yearScope applies when a request leaves the year open; yearsShown bounds the year selector.
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	aggregator TransactionAggregatorInterface,
	metrics MetricsRecorderInterface,
	yearScope string,
	yearsShown int,
	logger *slog.Logger,
) ReportServiceInterface {
	if yearsShown <= 0 {
		yearsShown = DefaultAvailableYears
	}

	return &reportService{
		transactionRepo: transactionRepo,
		aggregator:      aggregator,
		metrics:         metrics,
		yearScope:       yearScope,
		yearsShown:      yearsShown,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *reportService) GenerateReport(query models.TransactionQuery) (*models.GeneralReport, error) {
	start := time.Now()
	now := s.now().UTC()

	all, err := s.transactionRepo.GetAll()
	if err != nil {
		s.metrics.IncrementCounter("report_generated", map[string]string{"status": "failed"})
		s.logger.Error("failed to load transactions for report", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filters := query.EffectiveFilters(s.yearScope, now)

	order := models.DefaultTransactionSort()
	if query.Sort != nil {
		order = *query.Sort
	}

	categoryOrder := models.CategorySort{
		Key:       models.CategorySortKeyCategory,
		Direction: models.SortDirectionAscending,
	}
	if query.CategorySort != nil {
		categoryOrder = *query.CategorySort
	}

	filtered := s.aggregator.Filter(all, filters)

	categoryChoices := s.aggregator.DistinctCategories(all)
	slices.Sort(categoryChoices)

	report := &models.GeneralReport{
		Period:           filters.Describe(),
		Filters:          filters.ToReportFilters(order, categoryOrder),
		Totals:           s.aggregator.Totals(filtered),
		Highlights:       s.aggregator.Highlights(filtered),
		Monthly:          s.aggregator.MonthlySummary(filtered),
		Categories:       s.aggregator.SortCategorySummaries(s.aggregator.CategorySummary(filtered), categoryOrder),
		Breakdown:        s.aggregator.CategoryBreakdown(filtered),
		RunningBalance:   s.aggregator.RunningBalance(filtered),
		Transactions:     s.aggregator.Sort(filtered, order),
		TransactionCount: len(filtered),
		CategoryChoices:  categoryChoices,
		AvailableYears:   s.availableYears(now),
		GeneratedAt:      now,
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("report_generated", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("report_generation", duration)
	s.metrics.RecordGauge("report_transactions", float64(report.TransactionCount), nil)

	s.logger.Info("report generated",
		"period", report.Period,
		"transaction_count", report.TransactionCount,
		"balance", report.Totals.Balance.String(),
		"duration_ms", duration.Milliseconds(),
	)

	return report, nil
}

// AvailableYears lists the selectable report years, most recent first
func (s *reportService) AvailableYears() []int {
	return s.availableYears(s.now().UTC())
}

func (s *reportService) availableYears(now time.Time) []int {
	years := make([]int, s.yearsShown)
	for i := range years {
		years[i] = now.Year() - i
	}
	return years
}
