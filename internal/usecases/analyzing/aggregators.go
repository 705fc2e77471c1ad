// Package analyzing implementa os agregadores que transformam a tabela
// normalizada de transações nas métricas exibidas por cada página.
//
// Todos os agregadores são funções puras sobre o snapshot imutável: podem
// rodar em qualquer ordem e uma tabela vazia produz resultados vazios,
// nunca um erro.
package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/normalizing"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// Ordem fixa de calendário usada pelo mapa de calor, independente da ordem
// de chegada das linhas
var orderedWeekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DailyProfitSeries agrupa as transações por data de calendário e soma o
// lucro, devolvendo a série ordenada por data crescente. Uma tabela de um
// único dia produz uma série degenerada de um ponto.
func DailyProfitSeries(rows []domain.NormalizedTransaction) []domain.DailyProfitPoint {
	totals := make(map[time.Time]float64)
	for _, row := range rows {
		totals[row.Date] += row.Profit
	}

	series := make([]domain.DailyProfitPoint, 0, len(totals))
	for date, profit := range totals {
		series = append(series, domain.DailyProfitPoint{Date: date, TotalProfit: profit})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// Summary calcula os indicadores da visão geral. O segundo retorno informa
// o modo efetivamente aplicado: quando o modo pedido é quantity mas alguma
// linha não possui a coluna, o cálculo recua para contagem de linhas.
func Summary(rows []domain.NormalizedTransaction, mode domain.ItemsSoldMode) (domain.SummaryMetrics, domain.ItemsSoldMode) {
	metrics := domain.SummaryMetrics{}
	if len(rows) == 0 {
		return metrics, domain.ItemsSoldByRowCount
	}

	var priceSum float64
	quantitySum := 0
	hasQuantity := true

	for _, row := range rows {
		metrics.TotalProfit += row.Profit
		priceSum += row.PriceTotal

		if row.Quantity == nil {
			hasQuantity = false
		} else {
			quantitySum += *row.Quantity
		}
	}

	effectiveMode := domain.ItemsSoldByRowCount
	if mode == domain.ItemsSoldByQuantity && hasQuantity {
		effectiveMode = domain.ItemsSoldByQuantity
		metrics.TotalItemsSold = quantitySum
	} else {
		metrics.TotalItemsSold = len(rows)
	}

	metrics.AverageSalePrice = priceSum / float64(len(rows))

	return metrics, effectiveMode
}

// Traffic monta a matriz densa 7×24 de contagem de vendas por dia da semana
// e hora. Combinações sem nenhuma venda valem zero; nenhuma célula falta.
func Traffic(rows []domain.NormalizedTransaction) domain.TrafficHeatmap {
	weekdayIndex := make(map[string]int, len(orderedWeekdays))
	for i, day := range orderedWeekdays {
		weekdayIndex[day] = i
	}

	counts := make([][]int, len(orderedWeekdays))
	for i := range counts {
		counts[i] = make([]int, 24)
	}

	for _, row := range rows {
		counts[weekdayIndex[row.WeekdayName]][row.Hour]++
	}

	hours := make([]int, 24)
	labels := make([]string, 24)
	for h := 0; h < 24; h++ {
		hours[h] = h
		labels[h] = normalizing.FormatHour12(h)
	}

	return domain.TrafficHeatmap{
		Weekdays:   orderedWeekdays,
		Hours:      hours,
		HourLabels: labels,
		Counts:     counts,
	}
}

// EmployeeInvoiceCounts conta as notas fiscais distintas atendidas por cada
// funcionário. Uma nota com vários itens conta uma única vez. A ordenação é
// decrescente por contagem, com empates resolvidos pela ordem de chegada.
func EmployeeInvoiceCounts(rows []domain.NormalizedTransaction) []domain.EmployeeInvoiceCount {
	invoicesByEmployee := make(map[string]map[string]struct{})
	var arrival []string

	for _, row := range rows {
		invoices, ok := invoicesByEmployee[row.EmployeeFirstName]
		if !ok {
			invoices = make(map[string]struct{})
			invoicesByEmployee[row.EmployeeFirstName] = invoices
			arrival = append(arrival, row.EmployeeFirstName)
		}
		invoices[row.InvoiceID] = struct{}{}
	}

	counts := make([]domain.EmployeeInvoiceCount, 0, len(arrival))
	for _, employee := range arrival {
		counts = append(counts, domain.EmployeeInvoiceCount{
			Employee:     employee,
			InvoiceCount: len(invoicesByEmployee[employee]),
		})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].InvoiceCount > counts[j].InvoiceCount
	})

	return counts
}

// CategoryProfitRanking agrupa por subcategoria, soma o lucro e devolve as
// topK categorias em ordem decrescente. Quando currencyRounding está ativo,
// o total é arredondado para a unidade monetária mais próxima.
func CategoryProfitRanking(rows []domain.NormalizedTransaction, topK int, currencyRounding bool) []domain.CategoryProfit {
	totals := make(map[string]float64)
	var arrival []string

	for _, row := range rows {
		if _, ok := totals[row.SubCategory]; !ok {
			arrival = append(arrival, row.SubCategory)
		}
		totals[row.SubCategory] += row.Profit
	}

	ranking := make([]domain.CategoryProfit, 0, len(arrival))
	for _, category := range arrival {
		profit := totals[category]
		if currencyRounding {
			profit = utils.RoundToNearestUnit(profit)
		}
		ranking = append(ranking, domain.CategoryProfit{SubCategory: category, TotalProfit: profit})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalProfit > ranking[j].TotalProfit
	})

	return truncateProfit(ranking, topK)
}

// CategoryDaysOnHandRanking agrupa por subcategoria e calcula a média de
// dias em estoque, em ordem decrescente. A direção é proposital: categorias
// com maior tempo médio parado aparecem primeiro, apesar do rótulo
// "lowest-selling" do relatório original.
func CategoryDaysOnHandRanking(rows []domain.NormalizedTransaction, topK int) []domain.CategoryDaysOnHand {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var arrival []string

	for _, row := range rows {
		if _, ok := counts[row.SubCategory]; !ok {
			arrival = append(arrival, row.SubCategory)
		}
		sums[row.SubCategory] += row.DaysOnHand
		counts[row.SubCategory]++
	}

	ranking := make([]domain.CategoryDaysOnHand, 0, len(arrival))
	for _, category := range arrival {
		average := utils.RoundWithTwoDecimalPlace(sums[category] / float64(counts[category]))
		ranking = append(ranking, domain.CategoryDaysOnHand{
			SubCategory:       category,
			AverageDaysOnHand: average,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].AverageDaysOnHand > ranking[j].AverageDaysOnHand
	})

	if topK >= 1 && len(ranking) > topK {
		ranking = ranking[:topK]
	}

	return ranking
}

func truncateProfit(ranking []domain.CategoryProfit, topK int) []domain.CategoryProfit {
	if topK >= 1 && len(ranking) > topK {
		return ranking[:topK]
	}
	return ranking
}
