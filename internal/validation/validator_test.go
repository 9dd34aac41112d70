package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryPayload struct {
	Date   string `json:"date" validate:"required,calendar_date"`
	Kind   string `json:"kind" validate:"required,entry_kind"`
	Amount string `json:"amount" validate:"required,money_amount"`
}

type queryPayload struct {
	Sort         string `query:"sort" validate:"omitempty,sort_key"`
	Direction    string `query:"direction" validate:"omitempty,sort_direction"`
	CategorySort string `query:"category_sort" validate:"omitempty,category_sort_key"`
	Status       string `query:"status" validate:"omitempty,cheque_status"`
}

type countPayload struct {
	Count int `json:"count" validate:"positive_amount"`
}

func TestValidator_EntryRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		payload   entryPayload
		wantField string
		wantTag   string
	}{
		{
			name:    "valid",
			payload: entryPayload{Date: "2024-01-05", Kind: "inflow", Amount: "100.50"},
		},
		{
			name:      "bad date",
			payload:   entryPayload{Date: "05/01/2024", Kind: "inflow", Amount: "1"},
			wantField: "date",
			wantTag:   "calendar_date",
		},
		{
			name:      "bad kind",
			payload:   entryPayload{Date: "2024-01-05", Kind: "entrada", Amount: "1"},
			wantField: "kind",
			wantTag:   "entry_kind",
		},
		{
			name:      "zero amount",
			payload:   entryPayload{Date: "2024-01-05", Kind: "outflow", Amount: "0"},
			wantField: "amount",
			wantTag:   "money_amount",
		},
		{
			name:      "three decimal places",
			payload:   entryPayload{Date: "2024-01-05", Kind: "outflow", Amount: "1.005"},
			wantField: "amount",
			wantTag:   "money_amount",
		},
		{
			name:      "not a number",
			payload:   entryPayload{Date: "2024-01-05", Kind: "outflow", Amount: "abc"},
			wantField: "amount",
			wantTag:   "money_amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			require.Len(t, validationErrs, 1)
			assert.Equal(t, tt.wantField, validationErrs[0].Field())
			assert.Equal(t, tt.wantTag, validationErrs[0].Tag())
		})
	}
}

func TestValidator_QueryRules(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(queryPayload{}))
	assert.NoError(t, v.Struct(queryPayload{Sort: "amount", Direction: "asc", CategorySort: "net", Status: "cleared"}))

	err := v.Struct(queryPayload{Sort: "responsible", Direction: "sideways", CategorySort: "amount", Status: "bounced"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	fields := map[string]string{}
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, "sort_key", fields["sort"])
	assert.Equal(t, "sort_direction", fields["direction"])
	assert.Equal(t, "category_sort_key", fields["category_sort"])
	assert.Equal(t, "cheque_status", fields["status"])
}

func TestValidator_PositiveAmount(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(countPayload{Count: 3}))
	assert.Error(t, v.Struct(countPayload{Count: 0}))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
