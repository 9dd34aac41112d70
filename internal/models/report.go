package models

import (
	"fmt"
	"strconv"
	"time"
)

const (
	periodDateLayout = "02/01/2006"
	periodAll        = "Todo o período"
)

// GeneralReport is everything the reporting dashboard renders for one filter selection
type GeneralReport struct {
	Period           string                `json:"period"`
	Filters          ReportFilters         `json:"filters"`
	Totals           PeriodTotals          `json:"totals"`
	Highlights       PeriodHighlights      `json:"highlights"`
	Monthly          []MonthlySummary      `json:"monthly"`
	Categories       []CategorySummary     `json:"categories"`
	Breakdown        CategoryBreakdown     `json:"breakdown"`
	RunningBalance   []RunningBalancePoint `json:"running_balance"`
	Transactions     []Transaction         `json:"transactions"`
	TransactionCount int                   `json:"transaction_count"`
	CategoryChoices  []string              `json:"category_choices"`
	AvailableYears   []int                 `json:"available_years"`
	GeneratedAt      time.Time             `json:"generated_at"`
}

// ReportFilters echoes the effective filter and ordering used to build a report
type ReportFilters struct {
	Year         *int       `json:"year,omitempty"`
	Month        *int       `json:"month,omitempty"`
	Category     string     `json:"category,omitempty"`
	DateFrom     *time.Time `json:"date_from,omitempty"`
	DateTo       *time.Time `json:"date_to,omitempty"`
	TextQuery    string     `json:"q,omitempty"`
	InflowOnly   bool       `json:"inflow_only"`
	SortKey      string     `json:"sort"`
	SortDir      string     `json:"direction"`
	CategorySort string     `json:"category_sort"`
}

// LedgerPage is the ledger screen: a filtered list plus its totals
type LedgerPage struct {
	Period       string        `json:"period"`
	Transactions []Transaction `json:"transactions"`
	Totals       PeriodTotals  `json:"totals"`
	Count        int           `json:"count"`
}

// Describe renders the human-readable period label shown on reports and exports.
// A full date range wins over year and month; a category filter is appended.
func (f TransactionFilters) Describe() string {
	var period string

	switch {
	case f.DateFrom != nil && f.DateTo != nil:
		period = fmt.Sprintf("%s a %s", f.DateFrom.Format(periodDateLayout), f.DateTo.Format(periodDateLayout))
	case f.Year != nil && f.Month != nil:
		period = fmt.Sprintf("%s/%d", monthName(*f.Month), *f.Year)
	case f.Month != nil:
		period = monthName(*f.Month)
	case f.Year != nil:
		period = strconv.Itoa(*f.Year)
	default:
		period = periodAll
	}

	if f.Category != "" {
		period += " - Categoria: " + f.Category
	}

	return period
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return MonthNames[month-1]
}

// ToReportFilters echoes the effective filters and orderings of a report
func (f TransactionFilters) ToReportFilters(order TransactionSort, categoryOrder CategorySort) ReportFilters {
	return ReportFilters{
		Year:         f.Year,
		Month:        f.Month,
		Category:     f.Category,
		DateFrom:     f.DateFrom,
		DateTo:       f.DateTo,
		TextQuery:    f.TextQuery,
		InflowOnly:   f.InflowOnly,
		SortKey:      order.Key,
		SortDir:      order.Direction,
		CategorySort: categoryOrder.Key,
	}
}
