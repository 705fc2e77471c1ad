package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func newTestService(t *testing.T, analytics config.Analytics) Analyzer {
	t.Helper()
	return NewService(&config.Config{Analytics: analytics})
}

func TestNewService_validaAsOpcoes(t *testing.T) {
	tests := []struct {
		name     string
		input    config.Analytics
		expected domain.AnalyticsOptions
	}{
		{
			name: "Configuração válida é usada como está",
			input: config.Analytics{
				TopKCategories:   5,
				CurrencyRounding: true,
				ItemsSoldMode:    "quantity",
			},
			expected: domain.AnalyticsOptions{
				TopK:             5,
				CurrencyRounding: true,
				ItemsSoldMode:    domain.ItemsSoldByQuantity,
			},
		},
		{
			name: "TopK inválido recua para 10",
			input: config.Analytics{
				TopKCategories: 0,
				ItemsSoldMode:  "rows",
			},
			expected: domain.AnalyticsOptions{
				TopK:          10,
				ItemsSoldMode: domain.ItemsSoldByRowCount,
			},
		},
		{
			name: "Modo desconhecido recua para contagem de linhas",
			input: config.Analytics{
				TopKCategories: 10,
				ItemsSoldMode:  "weight",
			},
			expected: domain.AnalyticsOptions{
				TopK:          10,
				ItemsSoldMode: domain.ItemsSoldByRowCount,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, tt.input)
			assert.Equal(t, tt.expected, service.Options())
		})
	}
}

func TestService_Overview(t *testing.T) {
	service := newTestService(t, config.Analytics{TopKCategories: 10, ItemsSoldMode: "rows"})

	dataset := &domain.Dataset{ID: "abc123", Normalized: threeRowScenario()}

	report := service.Overview(dataset)

	assert.Equal(t, 13.0, report.Summary.TotalProfit)
	assert.Equal(t, domain.ItemsSoldByRowCount, report.ItemsSoldMode)
	require.Len(t, report.DailyProfit, 2)
}

func TestService_Overview_informaOModoEfetivo(t *testing.T) {
	// O modo quantity foi pedido mas as linhas não têm a coluna: o relatório
	// precisa informar o modo realmente aplicado
	service := newTestService(t, config.Analytics{TopKCategories: 10, ItemsSoldMode: "quantity"})

	dataset := &domain.Dataset{ID: "abc123", Normalized: threeRowScenario()}

	report := service.Overview(dataset)

	assert.Equal(t, domain.ItemsSoldByRowCount, report.ItemsSoldMode)
	assert.Equal(t, 3, report.Summary.TotalItemsSold)
}

func TestService_Performance(t *testing.T) {
	service := newTestService(t, config.Analytics{TopKCategories: 10, ItemsSoldMode: "rows"})

	dataset := &domain.Dataset{ID: "abc123", Normalized: threeRowScenario()}

	report := service.Performance(dataset)

	assert.Equal(t, 2, report.Traffic.Counts[0][9])
	require.Len(t, report.EmployeeInvoices, 2)
}

func TestService_Categories(t *testing.T) {
	service := newTestService(t, config.Analytics{TopKCategories: 1, CurrencyRounding: true, ItemsSoldMode: "rows"})

	dataset := &domain.Dataset{ID: "abc123", Normalized: threeRowScenario()}

	report := service.Categories(dataset)

	require.Len(t, report.TopByProfit, 1)
	assert.Equal(t, "A", report.TopByProfit[0].SubCategory)
	require.Len(t, report.TopByDaysOnHand, 1)
}

func TestService_datasetVazioProduzRelatoriosVazios(t *testing.T) {
	service := newTestService(t, config.Analytics{TopKCategories: 10, ItemsSoldMode: "rows"})

	dataset := &domain.Dataset{ID: "abc123"}

	overview := service.Overview(dataset)
	assert.Zero(t, overview.Summary.TotalProfit)
	assert.Empty(t, overview.DailyProfit)

	performance := service.Performance(dataset)
	assert.Len(t, performance.Traffic.Counts, 7)
	assert.Empty(t, performance.EmployeeInvoices)

	categories := service.Categories(dataset)
	assert.Empty(t, categories.TopByProfit)
	assert.Empty(t, categories.TopByDaysOnHand)
}
