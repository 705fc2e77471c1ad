package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/normalizing"
)

// normalizedRow monta uma transação normalizada a partir dos campos
// relevantes para os agregadores
func normalizedRow(soldAt time.Time, cost, price float64, category, employee, invoice string) domain.NormalizedTransaction {
	return domain.NormalizedTransaction{
		SoldAt:            soldAt,
		InvoiceID:         invoice,
		CostTotal:         cost,
		PriceTotal:        price,
		SubCategory:       category,
		Profit:            price - cost,
		Date:              time.Date(soldAt.Year(), soldAt.Month(), soldAt.Day(), 0, 0, 0, 0, soldAt.Location()),
		Hour:              soldAt.Hour(),
		WeekdayName:       soldAt.Weekday().String(),
		FormattedHour:     normalizing.FormatHour12(soldAt.Hour()),
		EmployeeFirstName: employee,
	}
}

// threeRowScenario é o cenário de referência: duas vendas da Jane na mesma
// nota na segunda de manhã e uma venda do Bob na terça à tarde
func threeRowScenario() []domain.NormalizedTransaction {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

	return []domain.NormalizedTransaction{
		normalizedRow(monday, 10, 15, "A", "Jane", "1"),
		normalizedRow(monday.Add(30*time.Minute), 5, 8, "A", "Jane", "1"),
		normalizedRow(tuesday, 20, 25, "B", "Bob", "2"),
	}
}

func TestSummary_cenarioDeReferencia(t *testing.T) {
	rows := threeRowScenario()

	metrics, mode := Summary(rows, domain.ItemsSoldByRowCount)

	assert.Equal(t, 13.0, metrics.TotalProfit)
	assert.Equal(t, 3, metrics.TotalItemsSold)
	assert.Equal(t, 16.0, metrics.AverageSalePrice) // (15 + 8 + 25) / 3
	assert.Equal(t, domain.ItemsSoldByRowCount, mode)
}

func TestSummary_modoQuantity(t *testing.T) {
	two := 2
	three := 3

	rows := threeRowScenario()
	rows[0].Quantity = &two
	rows[1].Quantity = &three
	rows[2].Quantity = &two

	metrics, mode := Summary(rows, domain.ItemsSoldByQuantity)

	assert.Equal(t, 7, metrics.TotalItemsSold)
	assert.Equal(t, domain.ItemsSoldByQuantity, mode)
}

func TestSummary_recuaParaContagemDeLinhasSemQuantity(t *testing.T) {
	two := 2

	// Apenas uma linha possui quantity: o modo pedido não pode ser honrado
	rows := threeRowScenario()
	rows[0].Quantity = &two

	metrics, mode := Summary(rows, domain.ItemsSoldByQuantity)

	assert.Equal(t, 3, metrics.TotalItemsSold)
	assert.Equal(t, domain.ItemsSoldByRowCount, mode)
}

func TestSummary_tabelaVazia(t *testing.T) {
	metrics, mode := Summary(nil, domain.ItemsSoldByRowCount)

	assert.Equal(t, domain.SummaryMetrics{}, metrics)
	assert.Equal(t, domain.ItemsSoldByRowCount, mode)
}

func TestDailyProfitSeries_cenarioDeReferencia(t *testing.T) {
	series := DailyProfitSeries(threeRowScenario())

	require.Len(t, series, 2)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), series[0].Date)
	assert.Equal(t, 8.0, series[0].TotalProfit)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), series[1].Date)
	assert.Equal(t, 5.0, series[1].TotalProfit)
}

func TestDailyProfitSeries_reconciliaComOLucroTotal(t *testing.T) {
	rows := threeRowScenario()

	var seriesTotal float64
	for _, point := range DailyProfitSeries(rows) {
		seriesTotal += point.TotalProfit
	}

	metrics, _ := Summary(rows, domain.ItemsSoldByRowCount)
	assert.Equal(t, metrics.TotalProfit, seriesTotal)
}

func TestDailyProfitSeries_umUnicoDia(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	rows := []domain.NormalizedTransaction{
		normalizedRow(monday, 10, 15, "A", "Jane", "1"),
		normalizedRow(monday.Add(time.Hour), 5, 8, "A", "Jane", "2"),
	}

	series := DailyProfitSeries(rows)

	require.Len(t, series, 1)
	assert.Equal(t, 8.0, series[0].TotalProfit)
}

func TestTraffic_cenarioDeReferencia(t *testing.T) {
	heatmap := Traffic(threeRowScenario())

	require.Len(t, heatmap.Weekdays, 7)
	require.Len(t, heatmap.Hours, 24)
	require.Len(t, heatmap.HourLabels, 24)
	require.Len(t, heatmap.Counts, 7)

	assert.Equal(t, "Monday", heatmap.Weekdays[0])
	assert.Equal(t, "Sunday", heatmap.Weekdays[6])
	assert.Equal(t, "9am", heatmap.HourLabels[9])
	assert.Equal(t, "2pm", heatmap.HourLabels[14])

	total := 0
	for weekday, row := range heatmap.Counts {
		require.Len(t, row, 24)
		for hour, count := range row {
			total += count

			switch {
			case weekday == 0 && hour == 9:
				assert.Equal(t, 2, count) // segunda às 9h
			case weekday == 1 && hour == 14:
				assert.Equal(t, 1, count) // terça às 14h
			default:
				assert.Zero(t, count)
			}
		}
	}

	// A soma de todas as células é o total de linhas da tabela
	assert.Equal(t, 3, total)
}

func TestTraffic_tabelaVaziaProduzMatrizZerada(t *testing.T) {
	heatmap := Traffic(nil)

	require.Len(t, heatmap.Counts, 7)
	for _, row := range heatmap.Counts {
		for _, count := range row {
			assert.Zero(t, count)
		}
	}
}

func TestEmployeeInvoiceCounts_cenarioDeReferencia(t *testing.T) {
	counts := EmployeeInvoiceCounts(threeRowScenario())

	require.Len(t, counts, 2)
	// Empate em 1 nota cada: a ordem de chegada desempata
	assert.Equal(t, domain.EmployeeInvoiceCount{Employee: "Jane", InvoiceCount: 1}, counts[0])
	assert.Equal(t, domain.EmployeeInvoiceCount{Employee: "Bob", InvoiceCount: 1}, counts[1])
}

func TestEmployeeInvoiceCounts_notasDistintas(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	rows := []domain.NormalizedTransaction{
		normalizedRow(monday, 10, 15, "A", "Jane", "1"),
		normalizedRow(monday, 5, 8, "A", "Jane", "1"),
		normalizedRow(monday, 5, 8, "B", "Jane", "2"),
		normalizedRow(monday, 20, 25, "B", "Bob", "3"),
	}

	counts := EmployeeInvoiceCounts(rows)

	require.Len(t, counts, 2)
	assert.Equal(t, domain.EmployeeInvoiceCount{Employee: "Jane", InvoiceCount: 2}, counts[0])
	assert.Equal(t, domain.EmployeeInvoiceCount{Employee: "Bob", InvoiceCount: 1}, counts[1])
}

func TestCategoryProfitRanking_cenarioDeReferencia(t *testing.T) {
	ranking := CategoryProfitRanking(threeRowScenario(), 10, true)

	require.Len(t, ranking, 2)
	assert.Equal(t, domain.CategoryProfit{SubCategory: "A", TotalProfit: 8}, ranking[0])
	assert.Equal(t, domain.CategoryProfit{SubCategory: "B", TotalProfit: 5}, ranking[1])
}

func TestCategoryProfitRanking_topKTruncaORanking(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	rows := []domain.NormalizedTransaction{
		normalizedRow(monday, 0, 30, "A", "Jane", "1"),
		normalizedRow(monday, 0, 20, "B", "Jane", "2"),
		normalizedRow(monday, 0, 10, "C", "Jane", "3"),
	}

	ranking := CategoryProfitRanking(rows, 2, true)

	require.Len(t, ranking, 2)
	assert.Equal(t, "A", ranking[0].SubCategory)
	assert.Equal(t, "B", ranking[1].SubCategory)
}

func TestCategoryProfitRanking_arredondamentoMonetario(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	rows := []domain.NormalizedTransaction{
		normalizedRow(monday, 10.10, 15.49, "A", "Jane", "1"), // lucro 5.39
		normalizedRow(monday, 10.00, 15.25, "B", "Jane", "2"), // lucro 5.25
	}

	withRounding := CategoryProfitRanking(rows, 10, true)
	assert.Equal(t, 5.0, withRounding[0].TotalProfit)
	assert.Equal(t, 5.0, withRounding[1].TotalProfit)

	withoutRounding := CategoryProfitRanking(rows, 10, false)
	assert.InDelta(t, 5.39, withoutRounding[0].TotalProfit, 0.001)
	assert.InDelta(t, 5.25, withoutRounding[1].TotalProfit, 0.001)
}

func TestCategoryDaysOnHandRanking(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	rowWithDays := func(category string, days float64) domain.NormalizedTransaction {
		row := normalizedRow(monday, 10, 15, category, "Jane", "1")
		row.DaysOnHand = days
		return row
	}

	rows := []domain.NormalizedTransaction{
		rowWithDays("A", 10),
		rowWithDays("A", 20),
		rowWithDays("B", 45),
		rowWithDays("C", 5),
	}

	ranking := CategoryDaysOnHandRanking(rows, 10)

	require.Len(t, ranking, 3)
	// Ordem decrescente: o maior tempo médio parado vem primeiro
	assert.Equal(t, domain.CategoryDaysOnHand{SubCategory: "B", AverageDaysOnHand: 45}, ranking[0])
	assert.Equal(t, domain.CategoryDaysOnHand{SubCategory: "A", AverageDaysOnHand: 15}, ranking[1])
	assert.Equal(t, domain.CategoryDaysOnHand{SubCategory: "C", AverageDaysOnHand: 5}, ranking[2])
}

func TestAgregadores_tabelaVazia(t *testing.T) {
	assert.Empty(t, DailyProfitSeries(nil))
	assert.Empty(t, EmployeeInvoiceCounts(nil))
	assert.Empty(t, CategoryProfitRanking(nil, 10, true))
	assert.Empty(t, CategoryDaysOnHandRanking(nil, 10))
}

func TestAgregadores_naoAlteramASerieDeEntrada(t *testing.T) {
	rows := threeRowScenario()
	original := threeRowScenario()

	Summary(rows, domain.ItemsSoldByRowCount)
	DailyProfitSeries(rows)
	Traffic(rows)
	EmployeeInvoiceCounts(rows)
	CategoryProfitRanking(rows, 10, true)
	CategoryDaysOnHandRanking(rows, 10)

	assert.Equal(t, original, rows)
}
