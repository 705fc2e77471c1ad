// Package spreadsheet lê exportações de itens vendidos (.xlsx) do sistema
// de PDV e as converte na tabela de transações do domínio.
package spreadsheet

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Rótulos de cabeçalho aceitos para cada coluna lógica. As exportações
// variam conforme a versão do sistema: a mais antiga já traz o primeiro
// nome separado (Employee_First), a atual traz o nome completo (Employee).
var headerAliases = map[string]domain.Column{
	"sold date":        domain.ColumnSoldAt,
	"invoice no":       domain.ColumnInvoiceID,
	"sold cost total":  domain.ColumnCostTotal,
	"sold price total": domain.ColumnPriceTotal,
	"sub category":     domain.ColumnSubCategory,
	"days on hand":     domain.ColumnDaysOnHand,
	"transaction type": domain.ColumnTransactionType,
	"employee role":    domain.ColumnEmployeeRole,
	"employee":         domain.ColumnEmployeeName,
	"employee_first":   domain.ColumnEmployeeName,
	"quantity":         domain.ColumnQuantity,
}

// Loader carrega planilhas de itens vendidos
type Loader interface {
	Load(reader io.Reader) (domain.TransactionTable, error)
	LoadFile(path string) (domain.TransactionTable, error)
}

type excelLoader struct{}

// NewLoader cria um loader baseado em excelize, lendo sempre a primeira aba
func NewLoader() Loader {
	return &excelLoader{}
}

func (l *excelLoader) LoadFile(path string) (domain.TransactionTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.TransactionTable{}, errors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer file.Close()

	return l.Load(file)
}

func (l *excelLoader) Load(reader io.Reader) (domain.TransactionTable, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return domain.TransactionTable{}, errors.Wrap(err, "erro ao abrir arquivo xlsx")
	}
	defer func() { _ = workbook.Close() }()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return domain.TransactionTable{}, errors.New("arquivo xlsx sem abas")
	}

	records, err := workbook.GetRows(sheets[0])
	if err != nil {
		return domain.TransactionTable{}, errors.Wrapf(err, "erro ao ler linhas da aba %s", sheets[0])
	}

	if len(records) == 0 {
		return domain.TransactionTable{}, errors.New("planilha vazia, nenhuma linha de cabeçalho encontrada")
	}

	columns, positions := mapHeader(records[0])

	table := domain.TransactionTable{
		Columns: columns,
		Rows:    make([]domain.Transaction, 0, len(records)-1),
	}

	for i, record := range records[1:] {
		if isBlankRow(record) {
			continue
		}

		row, err := buildRow(record, positions)
		if err != nil {
			return domain.TransactionTable{}, errors.Wrapf(err, "linha %d", i+2)
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// mapHeader resolve os rótulos do cabeçalho para colunas lógicas,
// preservando a ordem original do arquivo. Rótulos desconhecidos são
// ignorados: a validação de colunas obrigatórias acontece depois.
func mapHeader(header []string) ([]domain.Column, map[domain.Column]int) {
	var columns []domain.Column
	positions := make(map[domain.Column]int)

	for i, label := range header {
		column, ok := headerAliases[strings.ToLower(strings.TrimSpace(label))]
		if !ok {
			continue
		}
		if _, seen := positions[column]; seen {
			continue
		}
		columns = append(columns, column)
		positions[column] = i
	}

	return columns, positions
}

func buildRow(record []string, positions map[domain.Column]int) (domain.Transaction, error) {
	costTotal, err := parseAmount(cell(record, positions, domain.ColumnCostTotal))
	if err != nil {
		return domain.Transaction{}, errors.Wrap(err, "custo de venda inválido")
	}

	priceTotal, err := parseAmount(cell(record, positions, domain.ColumnPriceTotal))
	if err != nil {
		return domain.Transaction{}, errors.Wrap(err, "preço de venda inválido")
	}

	daysOnHand, err := parseAmount(cell(record, positions, domain.ColumnDaysOnHand))
	if err != nil {
		return domain.Transaction{}, errors.Wrap(err, "dias em estoque inválido")
	}

	row := domain.Transaction{
		SoldAt:          cell(record, positions, domain.ColumnSoldAt),
		InvoiceID:       cell(record, positions, domain.ColumnInvoiceID),
		CostTotal:       costTotal,
		PriceTotal:      priceTotal,
		SubCategory:     cell(record, positions, domain.ColumnSubCategory),
		DaysOnHand:      daysOnHand,
		TransactionType: cell(record, positions, domain.ColumnTransactionType),
		EmployeeRole:    cell(record, positions, domain.ColumnEmployeeRole),
		EmployeeName:    cell(record, positions, domain.ColumnEmployeeName),
	}

	if quantityCell := cell(record, positions, domain.ColumnQuantity); quantityCell != "" {
		quantity, err := strconv.Atoi(strings.TrimSpace(quantityCell))
		if err != nil {
			return domain.Transaction{}, errors.Wrap(err, "quantidade inválida")
		}
		row.Quantity = &quantity
	}

	return row, nil
}

func cell(record []string, positions map[domain.Column]int, column domain.Column) string {
	index, ok := positions[column]
	if !ok || index >= len(record) {
		return ""
	}
	return record[index]
}

// parseAmount interpreta valores monetários e numéricos da planilha.
// Células vazias valem zero; símbolos de moeda e separadores de milhar
// são tolerados.
func parseAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, nil
	}

	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	return strconv.ParseFloat(cleaned, 64)
}

func isBlankRow(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
