package handlers

import (
	"net/http"
	"testing"
	"time"

	"church-treasury/internal/dto"
	"church-treasury/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTransactionQuery(t *testing.T) {
	testCases := []struct {
		name    string
		raw     dto.TransactionQuery
		want    models.TransactionQuery
		wantErr string
	}{
		{
			name: "empty query keeps every default open",
			raw:  dto.TransactionQuery{},
			want: models.TransactionQuery{},
		},
		{
			name: "year all lifts the default scope",
			raw:  dto.TransactionQuery{Year: "ALL"},
			want: models.TransactionQuery{AllYears: true},
		},
		{
			name: "year and month",
			raw:  dto.TransactionQuery{Year: "2023", Month: "12"},
			want: models.TransactionQuery{Filters: models.TransactionFilters{Year: models.IntPtr(2023), Month: models.IntPtr(12)}},
		},
		{
			name: "sort key without direction is ascending",
			raw:  dto.TransactionQuery{Sort: models.SortKeyCategory},
			want: models.TransactionQuery{Sort: &models.TransactionSort{Key: models.SortKeyCategory, Direction: models.SortDirectionAscending}},
		},
		{
			name: "direction without key is ignored",
			raw:  dto.TransactionQuery{Direction: models.SortDirectionDescending},
			want: models.TransactionQuery{},
		},
		{
			name: "inflow only accepts 1",
			raw:  dto.TransactionQuery{InflowOnly: "1", TextQuery: "  oferta "},
			want: models.TransactionQuery{Filters: models.TransactionFilters{InflowOnly: true, TextQuery: "oferta"}},
		},
		{
			name:    "month out of range",
			raw:     dto.TransactionQuery{Month: "0"},
			wantErr: "month: must be between 1 and 12",
		},
		{
			name:    "year is not a number",
			raw:     dto.TransactionQuery{Year: "last"},
			wantErr: "year: must be a year or 'all'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toTransactionQuery(tc.raw)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToTransactionQuery_DateRange(t *testing.T) {
	got, err := toTransactionQuery(dto.TransactionQuery{DateFrom: "2024-02-01", DateTo: "2024-02-29"})

	require.NoError(t, err)
	require.NotNil(t, got.Filters.DateFrom)
	require.NotNil(t, got.Filters.DateTo)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), *got.Filters.DateFrom)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), *got.Filters.DateTo)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "first X-Forwarded-For hop",
			headers:    map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "10.0.0.1",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.9"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.9",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "connection address without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/", "")
			for k, v := range tt.headers {
				c.Request().Header.Set(k, v)
			}
			c.Request().RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.expected, ClientIP(c))
		})
	}
}
