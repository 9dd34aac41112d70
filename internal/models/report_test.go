package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionFilters_Describe(t *testing.T) {
	from := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters TransactionFilters
		want    string
	}{
		{
			name: "no filters",
			want: "Todo o período",
		},
		{
			name:    "year only",
			filters: TransactionFilters{Year: IntPtr(2024)},
			want:    "2024",
		},
		{
			name:    "month only",
			filters: TransactionFilters{Month: IntPtr(3)},
			want:    "Março",
		},
		{
			name:    "month and year",
			filters: TransactionFilters{Year: IntPtr(2024), Month: IntPtr(1)},
			want:    "Janeiro/2024",
		},
		{
			name:    "date range wins over year",
			filters: TransactionFilters{Year: IntPtr(2023), DateFrom: &from, DateTo: &to},
			want:    "05/01/2024 a 31/03/2024",
		},
		{
			name:    "open ended range falls back to year",
			filters: TransactionFilters{Year: IntPtr(2024), DateFrom: &from},
			want:    "2024",
		},
		{
			name:    "category suffix",
			filters: TransactionFilters{Year: IntPtr(2024), Category: CategoryTithes},
			want:    "2024 - Categoria: Dízimos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Describe())
		})
	}
}

func TestTransactionFilters_ToReportFilters(t *testing.T) {
	filters := TransactionFilters{Year: IntPtr(2024), Category: CategoryOfferings, InflowOnly: true}
	got := filters.ToReportFilters(DefaultTransactionSort(), CategorySort{Key: CategorySortKeyNet, Direction: SortDirectionDescending})

	assert.Equal(t, 2024, *got.Year)
	assert.Equal(t, CategoryOfferings, got.Category)
	assert.True(t, got.InflowOnly)
	assert.Equal(t, SortKeyDate, got.SortKey)
	assert.Equal(t, SortDirectionDescending, got.SortDir)
	assert.Equal(t, CategorySortKeyNet, got.CategorySort)
}
