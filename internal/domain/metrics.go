package domain

import "time"

// ItemsSoldMode define como o total de itens vendidos é calculado.
// A divergência entre contagem de linhas e soma de quantity é uma
// escolha explícita de configuração, nunca um desvio implícito de código.
type ItemsSoldMode string

const (
	// ItemsSoldByRowCount conta uma linha por item vendido
	ItemsSoldByRowCount ItemsSoldMode = "rows"
	// ItemsSoldByQuantity soma a coluna quantity quando presente
	ItemsSoldByQuantity ItemsSoldMode = "quantity"
)

// AnalyticsOptions parametriza os agregadores
type AnalyticsOptions struct {
	TopK             int           `json:"top_k"`
	CurrencyRounding bool          `json:"currency_rounding"`
	ItemsSoldMode    ItemsSoldMode `json:"items_sold_mode"`
}

// DailyProfitPoint é um ponto da série diária de lucro
type DailyProfitPoint struct {
	Date        time.Time `json:"date"`
	TotalProfit float64   `json:"total_profit"`
}

// SummaryMetrics reúne os indicadores exibidos no topo da página de visão geral
type SummaryMetrics struct {
	TotalProfit      float64 `json:"total_profit"`
	TotalItemsSold   int     `json:"total_items_sold"`
	AverageSalePrice float64 `json:"average_sale_price"`
}

// TrafficHeatmap é a matriz densa de tráfego por dia da semana e hora.
// Weekdays segue sempre a ordem de calendário segunda→domingo e cada
// célula inexistente no dado de origem vale zero.
type TrafficHeatmap struct {
	Weekdays   []string `json:"weekdays"`
	Hours      []int    `json:"hours"`
	HourLabels []string `json:"hour_labels"`
	Counts     [][]int  `json:"counts"`
}

// EmployeeInvoiceCount é a contagem de notas distintas atendidas por um funcionário
type EmployeeInvoiceCount struct {
	Employee     string `json:"employee"`
	InvoiceCount int    `json:"invoice_count"`
}

// CategoryProfit é uma categoria ranqueada pelo lucro acumulado
type CategoryProfit struct {
	SubCategory string  `json:"sub_category"`
	TotalProfit float64 `json:"total_profit"`
}

// CategoryDaysOnHand é uma categoria ranqueada pela média de dias em estoque.
// A ordenação é decrescente de propósito: o relatório original lista primeiro
// as categorias com maior tempo médio parado, apesar do rótulo "lowest-selling".
type CategoryDaysOnHand struct {
	SubCategory       string  `json:"sub_category"`
	AverageDaysOnHand float64 `json:"average_days_on_hand"`
}

// OverviewReport alimenta a página de visão geral
type OverviewReport struct {
	Summary       SummaryMetrics     `json:"summary"`
	ItemsSoldMode ItemsSoldMode      `json:"items_sold_mode"`
	DailyProfit   []DailyProfitPoint `json:"daily_profit"`
}

// PerformanceReport alimenta a página de desempenho da loja
type PerformanceReport struct {
	Traffic          TrafficHeatmap         `json:"traffic"`
	EmployeeInvoices []EmployeeInvoiceCount `json:"employee_invoices"`
}

// CategoryReport alimenta a página de análise de categorias
type CategoryReport struct {
	TopByProfit     []CategoryProfit     `json:"top_by_profit"`
	TopByDaysOnHand []CategoryDaysOnHand `json:"top_by_days_on_hand"`
}
