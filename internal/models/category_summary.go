package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	Category string          `json:"category"`
	Inflow   decimal.Decimal `json:"inflow"`
	Outflow  decimal.Decimal `json:"outflow"`
	Net      decimal.Decimal `json:"net"`
}
