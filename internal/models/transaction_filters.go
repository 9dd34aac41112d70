package models

import (
	"time"
)

const (
	SortKeyAmount   = "amount"
	SortKeyDate     = "date"
	SortKeyCategory = "category"

	SortDirectionAscending  = "asc"
	SortDirectionDescending = "desc"

	CategorySortKeyCategory = "category"
	CategorySortKeyNet      = "net"

	YearScopeAll     = "all"
	YearScopeCurrent = "current"
)

// TransactionFilters contains the optional predicates of a ledger query.
// A nil pointer or empty string means no constraint.
type TransactionFilters struct {
	Year       *int
	Month      *int
	Category   string
	DateFrom   *time.Time
	DateTo     *time.Time
	TextQuery  string
	InflowOnly bool
}

// TransactionSort describes an ordering of a transaction list
type TransactionSort struct {
	Key       string
	Direction string
}

// CategorySort describes an ordering of category summaries
type CategorySort struct {
	Key       string
	Direction string
}

// TransactionQuery is a list or report request as received, before defaults are applied
type TransactionQuery struct {
	Filters TransactionFilters
	// AllYears is set when the caller explicitly asked for every year
	AllYears     bool
	Sort         *TransactionSort
	CategorySort *CategorySort
}

// EffectiveFilters applies the default year scope when the query leaves the year open.
// An explicit year or an explicit "all" overrides the scope. Date bounds combine with it.
func (q TransactionQuery) EffectiveFilters(scope string, now time.Time) TransactionFilters {
	filters := q.Filters
	if filters.Year != nil || q.AllYears {
		return filters
	}
	if scope == YearScopeCurrent {
		filters.Year = IntPtr(now.Year())
	}
	return filters
}

// IsValidYearScope checks if the default year scope is supported
func IsValidYearScope(scope string) bool {
	return scope == YearScopeAll || scope == YearScopeCurrent
}

// DefaultTransactionSort is the ordering the report view starts with
func DefaultTransactionSort() TransactionSort {
	return TransactionSort{Key: SortKeyDate, Direction: SortDirectionDescending}
}

// IsValidSortKey checks if the transaction sort key is supported
func IsValidSortKey(key string) bool {
	switch key {
	case SortKeyAmount, SortKeyDate, SortKeyCategory:
		return true
	default:
		return false
	}
}

// IsValidSortDirection checks if the sort direction is supported
func IsValidSortDirection(direction string) bool {
	return direction == SortDirectionAscending || direction == SortDirectionDescending
}

// IsValidCategorySortKey checks if the category summary sort key is supported
func IsValidCategorySortKey(key string) bool {
	return key == CategorySortKeyCategory || key == CategorySortKeyNet
}

// IntPtr is a small helper for building filters
func IntPtr(v int) *int {
	return &v
}

// TimePtr is a small helper for building filters
func TimePtr(t time.Time) *time.Time {
	return &t
}
