package services

import (
	"slices"
	"strings"
	"time"

	"church-treasury/internal/models"

	"github.com/shopspring/decimal"
)

type transactionAggregator struct{}

// NewTransactionAggregator creates the pure derivation pipeline behind the ledger and report views.
// Every method copies before reordering; the caller's slice is never mutated.
func NewTransactionAggregator() TransactionAggregatorInterface {
	return &transactionAggregator{}
}

func (a *transactionAggregator) Filter(transactions []models.Transaction, filters models.TransactionFilters) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))
	query := strings.ToLower(filters.TextQuery)

	var from, to time.Time
	if filters.DateFrom != nil {
		from = models.CalendarDay(*filters.DateFrom)
	}
	if filters.DateTo != nil {
		to = models.CalendarDay(*filters.DateTo)
	}

	for i := range transactions {
		txn := &transactions[i]
		day := models.CalendarDay(txn.Date)

		if filters.Year != nil && day.Year() != *filters.Year {
			continue
		}
		if filters.Month != nil && int(day.Month()) != *filters.Month {
			continue
		}
		if filters.Category != "" && txn.Category != filters.Category {
			continue
		}
		if filters.DateFrom != nil && day.Before(from) {
			continue
		}
		if filters.DateTo != nil && day.After(to) {
			continue
		}
		if query != "" && !matchesText(txn, query) {
			continue
		}
		if filters.InflowOnly && !txn.IsInflow() {
			continue
		}

		result = append(result, *txn)
	}

	return result
}

func matchesText(txn *models.Transaction, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(txn.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(txn.Category), lowerQuery) ||
		strings.Contains(strings.ToLower(txn.Responsible), lowerQuery)
}

func (a *transactionAggregator) Sort(transactions []models.Transaction, order models.TransactionSort) []models.Transaction {
	sorted := slices.Clone(transactions)
	if sorted == nil {
		sorted = []models.Transaction{}
	}

	var cmp func(x, y models.Transaction) int
	switch order.Key {
	case models.SortKeyAmount:
		cmp = func(x, y models.Transaction) int { return x.Amount.Cmp(y.Amount) }
	case models.SortKeyCategory:
		cmp = func(x, y models.Transaction) int { return strings.Compare(x.Category, y.Category) }
	default:
		cmp = func(x, y models.Transaction) int { return x.Date.Compare(y.Date) }
	}

	// equal keys compare as 0 in both directions, so ties keep input order
	if order.Direction == models.SortDirectionDescending {
		asc := cmp
		cmp = func(x, y models.Transaction) int { return asc(y, x) }
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}

func (a *transactionAggregator) Totals(transactions []models.Transaction) models.PeriodTotals {
	totals := models.ZeroTotals()

	for i := range transactions {
		txn := &transactions[i]
		if txn.IsInflow() {
			totals.Inflow = totals.Inflow.Add(txn.Amount)
		} else {
			totals.Outflow = totals.Outflow.Add(txn.Amount)
		}
	}

	totals.Balance = totals.Inflow.Sub(totals.Outflow)
	return totals
}

func (a *transactionAggregator) MonthlySummary(transactions []models.Transaction) []models.MonthlySummary {
	months := make([]models.MonthlySummary, 12)
	for i := range months {
		months[i] = models.MonthlySummary{
			Month:   i + 1,
			Name:    models.MonthNames[i],
			Inflow:  decimal.Zero,
			Outflow: decimal.Zero,
			Balance: decimal.Zero,
		}
	}

	for i := range transactions {
		txn := &transactions[i]
		bucket := &months[models.CalendarDay(txn.Date).Month()-1]
		if txn.IsInflow() {
			bucket.Inflow = bucket.Inflow.Add(txn.Amount)
		} else {
			bucket.Outflow = bucket.Outflow.Add(txn.Amount)
		}
	}

	for i := range months {
		months[i].Balance = months[i].Inflow.Sub(months[i].Outflow)
	}

	return months
}

func (a *transactionAggregator) CategorySummary(transactions []models.Transaction) []models.CategorySummary {
	summaries := make([]models.CategorySummary, 0)
	index := make(map[string]int)

	for i := range transactions {
		txn := &transactions[i]

		pos, ok := index[txn.Category]
		if !ok {
			pos = len(summaries)
			index[txn.Category] = pos
			summaries = append(summaries, models.CategorySummary{
				Category: txn.Category,
				Inflow:   decimal.Zero,
				Outflow:  decimal.Zero,
				Net:      decimal.Zero,
			})
		}

		summary := &summaries[pos]
		if txn.IsInflow() {
			summary.Inflow = summary.Inflow.Add(txn.Amount)
		} else {
			summary.Outflow = summary.Outflow.Add(txn.Amount)
		}
	}

	for i := range summaries {
		summaries[i].Net = summaries[i].Inflow.Sub(summaries[i].Outflow)
	}

	return summaries
}

func (a *transactionAggregator) SortCategorySummaries(summaries []models.CategorySummary, order models.CategorySort) []models.CategorySummary {
	sorted := slices.Clone(summaries)
	if sorted == nil {
		sorted = []models.CategorySummary{}
	}

	var cmp func(x, y models.CategorySummary) int
	switch order.Key {
	case models.CategorySortKeyNet:
		cmp = func(x, y models.CategorySummary) int { return x.Net.Cmp(y.Net) }
	default:
		cmp = func(x, y models.CategorySummary) int { return strings.Compare(x.Category, y.Category) }
	}

	if order.Direction == models.SortDirectionDescending {
		asc := cmp
		cmp = func(x, y models.CategorySummary) int { return asc(y, x) }
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}

func (a *transactionAggregator) RunningBalance(transactions []models.Transaction) []models.RunningBalancePoint {
	chronological := a.Sort(transactions, models.TransactionSort{
		Key:       models.SortKeyDate,
		Direction: models.SortDirectionAscending,
	})

	points := make([]models.RunningBalancePoint, 0, len(chronological))
	balance := decimal.Zero

	for i := range chronological {
		txn := &chronological[i]
		balance = balance.Add(txn.SignedAmount())
		points = append(points, models.RunningBalancePoint{
			TransactionID:     txn.ID.String(),
			Date:              txn.Date,
			CumulativeBalance: balance,
		})
	}

	return points
}

func (a *transactionAggregator) DistinctCategories(transactions []models.Transaction) []string {
	categories := make([]string, 0)
	seen := make(map[string]struct{})

	for i := range transactions {
		category := transactions[i].Category
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	return categories
}

func (a *transactionAggregator) CategoryBreakdown(transactions []models.Transaction) models.CategoryBreakdown {
	breakdown := models.CategoryBreakdown{
		Inflows:  make([]models.ChartSlice, 0),
		Outflows: make([]models.ChartSlice, 0),
	}
	inflowIndex := make(map[string]int)
	outflowIndex := make(map[string]int)

	for i := range transactions {
		txn := &transactions[i]
		if txn.IsInflow() {
			breakdown.Inflows = addToSlice(breakdown.Inflows, inflowIndex, txn.Category, txn.Amount)
		} else {
			breakdown.Outflows = addToSlice(breakdown.Outflows, outflowIndex, txn.Category, txn.Amount)
		}
	}

	return breakdown
}

func addToSlice(series []models.ChartSlice, index map[string]int, name string, amount decimal.Decimal) []models.ChartSlice {
	if pos, ok := index[name]; ok {
		series[pos].Value = series[pos].Value.Add(amount)
		return series
	}
	index[name] = len(series)
	return append(series, models.ChartSlice{Name: name, Value: amount})
}

func (a *transactionAggregator) Highlights(transactions []models.Transaction) models.PeriodHighlights {
	highlights := models.PeriodHighlights{
		LargestInflow:  decimal.Zero,
		LargestOutflow: decimal.Zero,
		Count:          len(transactions),
	}

	for i := range transactions {
		txn := &transactions[i]
		if txn.IsInflow() {
			highlights.LargestInflow = decimal.Max(highlights.LargestInflow, txn.Amount)
		} else {
			highlights.LargestOutflow = decimal.Max(highlights.LargestOutflow, txn.Amount)
		}
	}

	return highlights
}
