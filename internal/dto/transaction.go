package dto

import (
	"church-treasury/internal/models"
)

// TransactionRequest is the payload for creating or replacing a ledger entry
type TransactionRequest struct {
	Date        string `json:"date" validate:"required,calendar_date"`
	Kind        string `json:"kind" validate:"required,entry_kind"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Responsible string `json:"responsible" validate:"required,min=1,max=100"`
	Notes       string `json:"notes" validate:"max=1000"`
}

// TransactionQuery carries the raw filter and ordering parameters of a list request
type TransactionQuery struct {
	Year         string `query:"year"`
	Month        string `query:"month"`
	Category     string `query:"category"`
	DateFrom     string `query:"date_from" validate:"omitempty,calendar_date"`
	DateTo       string `query:"date_to" validate:"omitempty,calendar_date"`
	TextQuery    string `query:"q" validate:"max=100"`
	InflowOnly   string `query:"inflow_only" validate:"omitempty,oneof=true false 1 0"`
	Sort         string `query:"sort" validate:"omitempty,sort_key"`
	Direction    string `query:"direction" validate:"omitempty,sort_direction"`
	CategorySort string `query:"category_sort" validate:"omitempty,category_sort_key"`
	CategoryDir  string `query:"category_direction" validate:"omitempty,sort_direction"`
}

// ListTransactionsResponse is the ledger screen payload
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Totals       models.PeriodTotals  `json:"totals"`
	Count        int                  `json:"count"`
}

// CategoriesResponse lists the distinct categories available as filter choices
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Suggested  []string `json:"suggested"`
}
