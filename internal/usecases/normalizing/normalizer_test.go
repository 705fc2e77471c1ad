package normalizing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	table := domain.TransactionTable{
		Columns: domain.RequiredColumns(),
		Rows: []domain.Transaction{
			{
				SoldAt:       "2024-03-04 09:30:00",
				InvoiceID:    "INV-1",
				CostTotal:    10,
				PriceTotal:   15,
				SubCategory:  "Sunglasses",
				DaysOnHand:   12,
				EmployeeName: "jane doe",
			},
			{
				SoldAt:       "2024-03-05 14:00:00",
				InvoiceID:    "INV-2",
				CostTotal:    20,
				PriceTotal:   25,
				SubCategory:  "Frames",
				DaysOnHand:   30,
				EmployeeName: "BOB lee",
			},
		},
	}

	normalized, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, normalized, 2)

	first := normalized[0]
	assert.Equal(t, 5.0, first.Profit)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 9, first.Hour)
	assert.Equal(t, "Monday", first.WeekdayName)
	assert.Equal(t, "9am", first.FormattedHour)
	assert.Equal(t, "Jane", first.EmployeeFirstName)

	second := normalized[1]
	assert.Equal(t, 5.0, second.Profit)
	assert.Equal(t, 14, second.Hour)
	assert.Equal(t, "Tuesday", second.WeekdayName)
	assert.Equal(t, "2pm", second.FormattedHour)
	assert.Equal(t, "Bob", second.EmployeeFirstName)
}

func TestNormalize_formatosDeData(t *testing.T) {
	tests := []struct {
		name     string
		soldAt   string
		expected time.Time
	}{
		{
			name:     "Formato ISO com hora",
			soldAt:   "2024-03-04 09:30:00",
			expected: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "Formato ISO sem segundos",
			soldAt:   "2024-03-04 09:30",
			expected: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "Somente a data",
			soldAt:   "2024-03-04",
			expected: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Formato americano com hora",
			soldAt:   "03/04/2024 09:30:00",
			expected: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339",
			soldAt:   "2024-03-04T09:30:00Z",
			expected: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := domain.TransactionTable{
				Rows: []domain.Transaction{
					{SoldAt: tt.soldAt, EmployeeName: "Jane Doe"},
				},
			}

			normalized, err := Normalize(table)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(normalized[0].SoldAt))
		})
	}
}

func TestNormalize_dataInvalidaAbortaTudo(t *testing.T) {
	table := domain.TransactionTable{
		Rows: []domain.Transaction{
			{SoldAt: "2024-03-04", EmployeeName: "Jane Doe"},
			{SoldAt: "ontem", EmployeeName: "Bob Lee"},
		},
	}

	normalized, err := Normalize(table)

	var dateErr *domain.DateParseError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, 2, dateErr.Row)
	assert.Equal(t, "ontem", dateErr.Value)
	assert.Nil(t, normalized)
}

func TestNormalize_nomeVazioAbortaTudo(t *testing.T) {
	table := domain.TransactionTable{
		Rows: []domain.Transaction{
			{SoldAt: "2024-03-04", EmployeeName: "   "},
		},
	}

	normalized, err := Normalize(table)

	var nameErr *domain.MalformedNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, 1, nameErr.Row)
	assert.Nil(t, normalized)
}

func TestNormalize_naoAlteraATabelaDeEntrada(t *testing.T) {
	rows := []domain.Transaction{
		{SoldAt: "2024-03-04 09:30:00", EmployeeName: "jane doe", CostTotal: 10, PriceTotal: 15},
	}
	table := domain.TransactionTable{Columns: domain.RequiredColumns(), Rows: rows}

	_, err := Normalize(table)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-04 09:30:00", table.Rows[0].SoldAt)
	assert.Equal(t, "jane doe", table.Rows[0].EmployeeName)
}

func TestNormalize_derivacoesSaoPuras(t *testing.T) {
	table := domain.TransactionTable{
		Rows: []domain.Transaction{
			{SoldAt: "2024-03-04 09:30:00", EmployeeName: "Jane Doe", CostTotal: 10, PriceTotal: 15},
		},
	}

	first, err := Normalize(table)
	require.NoError(t, err)

	second, err := Normalize(table)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatHour12(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{hour: 0, expected: "12am"},
		{hour: 1, expected: "1am"},
		{hour: 9, expected: "9am"},
		{hour: 11, expected: "11am"},
		{hour: 12, expected: "12pm"},
		{hour: 13, expected: "1pm"},
		{hour: 14, expected: "2pm"},
		{hour: 23, expected: "11pm"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHour12(tt.hour))
		})
	}
}

func TestFormatHour12_totalSobreODia(t *testing.T) {
	// Cada hora 0-23 tem exatamente um rótulo e nenhum rótulo se repete
	seen := make(map[string]bool)
	for hour := 0; hour < 24; hour++ {
		label := FormatHour12(hour)
		assert.NotEmpty(t, label)
		assert.False(t, seen[label], fmt.Sprintf("rótulo repetido: %s", label))
		seen[label] = true
	}
}
