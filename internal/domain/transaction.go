// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Column identifica uma coluna lógica da planilha de vendas
type Column string

const (
	ColumnSoldAt          Column = "sold_at"
	ColumnInvoiceID       Column = "invoice_id"
	ColumnCostTotal       Column = "cost_total"
	ColumnPriceTotal      Column = "price_total"
	ColumnSubCategory     Column = "sub_category"
	ColumnDaysOnHand      Column = "days_on_hand"
	ColumnTransactionType Column = "transaction_type"
	ColumnEmployeeRole    Column = "employee_role"
	ColumnEmployeeName    Column = "employee_name"

	// ColumnQuantity é opcional: exportações antigas não a possuem
	ColumnQuantity Column = "quantity"
)

// RequiredColumns retorna o conjunto de colunas obrigatórias de uma exportação
// de itens vendidos. A coluna quantity não entra: sua ausência não invalida a planilha.
func RequiredColumns() []Column {
	return []Column{
		ColumnSoldAt,
		ColumnInvoiceID,
		ColumnCostTotal,
		ColumnPriceTotal,
		ColumnSubCategory,
		ColumnDaysOnHand,
		ColumnTransactionType,
		ColumnEmployeeRole,
		ColumnEmployeeName,
	}
}

// Transaction representa um item vendido conforme lido da planilha.
// SoldAt permanece como texto bruto até a normalização.
type Transaction struct {
	SoldAt          string   `json:"sold_at"`
	InvoiceID       string   `json:"invoice_id"`
	CostTotal       float64  `json:"cost_total"`
	PriceTotal      float64  `json:"price_total"`
	SubCategory     string   `json:"sub_category"`
	DaysOnHand      float64  `json:"days_on_hand"`
	TransactionType string   `json:"transaction_type"`
	EmployeeRole    string   `json:"employee_role"`
	EmployeeName    string   `json:"employee_name"`
	Quantity        *int     `json:"quantity,omitempty"`
}

// TransactionTable é a tabela de transações na ordem original do arquivo
type TransactionTable struct {
	Columns []Column      `json:"columns"`
	Rows    []Transaction `json:"rows"`
}

// HasColumn verifica se a tabela possui a coluna informada
func (t TransactionTable) HasColumn(column Column) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// NormalizedTransaction é uma transação com os campos derivados já calculados.
// É sempre produzida em uma nova tabela: a tabela bruta nunca é alterada.
type NormalizedTransaction struct {
	SoldAt            time.Time `json:"sold_at"`
	InvoiceID         string    `json:"invoice_id"`
	CostTotal         float64   `json:"cost_total"`
	PriceTotal        float64   `json:"price_total"`
	SubCategory       string    `json:"sub_category"`
	DaysOnHand        float64   `json:"days_on_hand"`
	TransactionType   string    `json:"transaction_type"`
	EmployeeRole      string    `json:"employee_role"`
	EmployeeName      string    `json:"employee_name"`
	Quantity          *int      `json:"quantity,omitempty"`
	Profit            float64   `json:"profit"`
	Date              time.Time `json:"date"`
	Hour              int       `json:"hour"`
	WeekdayName       string    `json:"weekday_name"`
	FormattedHour     string    `json:"formatted_hour"`
	EmployeeFirstName string    `json:"employee_first_name"`
}
