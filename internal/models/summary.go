package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthNames are the display labels of the monthly rollup, January first
var MonthNames = [12]string{
	"Janeiro",
	"Fevereiro",
	"Março",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

// PeriodTotals aggregates a set of transactions
type PeriodTotals struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlySummary is one calendar month of the yearly rollup
type MonthlySummary struct {
	Month   int             `json:"month"`
	Name    string          `json:"name"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// RunningBalancePoint is one step of the chronological balance sweep
type RunningBalancePoint struct {
	TransactionID     string          `json:"transaction_id"`
	Date              time.Time       `json:"date"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
}

// ChartSlice is a named value of a pie chart
type ChartSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CategoryBreakdown splits category sums by direction for the pie charts
type CategoryBreakdown struct {
	Inflows  []ChartSlice `json:"inflows"`
	Outflows []ChartSlice `json:"outflows"`
}

// PeriodHighlights are the single-entry extremes shown next to the totals
type PeriodHighlights struct {
	LargestInflow  decimal.Decimal `json:"largest_inflow"`
	LargestOutflow decimal.Decimal `json:"largest_outflow"`
	Count          int             `json:"count"`
}

// ZeroTotals returns totals with every field set to zero
func ZeroTotals() PeriodTotals {
	return PeriodTotals{
		Inflow:  decimal.Zero,
		Outflow: decimal.Zero,
		Balance: decimal.Zero,
	}
}
