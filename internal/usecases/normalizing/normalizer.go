package normalizing

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Formatos aceitos para a coluna sold_at. As exportações de itens vendidos
// variam conforme a versão do sistema de PDV que gerou o arquivo.
var soldAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// Normalize produz uma nova tabela com os campos derivados calculados a
// partir das colunas brutas: lucro, data de calendário, hora, dia da semana,
// rótulo de 12 horas e primeiro nome do funcionário.
//
// A política é tudo-ou-nada: qualquer valor inválido aborta a normalização
// inteira, espelhando o comportamento dos agregadores que consomem a tabela
// completa. A tabela de entrada nunca é alterada.
func Normalize(table domain.TransactionTable) ([]domain.NormalizedTransaction, error) {
	normalized := make([]domain.NormalizedTransaction, 0, len(table.Rows))

	for i, row := range table.Rows {
		soldAt, err := parseSoldAt(row.SoldAt)
		if err != nil {
			return nil, &domain.DateParseError{Row: i + 1, Value: row.SoldAt}
		}

		firstName, err := employeeFirstName(row.EmployeeName)
		if err != nil {
			return nil, &domain.MalformedNameError{Row: i + 1, Value: row.EmployeeName}
		}

		normalized = append(normalized, domain.NormalizedTransaction{
			SoldAt:            soldAt,
			InvoiceID:         row.InvoiceID,
			CostTotal:         row.CostTotal,
			PriceTotal:        row.PriceTotal,
			SubCategory:       row.SubCategory,
			DaysOnHand:        row.DaysOnHand,
			TransactionType:   row.TransactionType,
			EmployeeRole:      row.EmployeeRole,
			EmployeeName:      row.EmployeeName,
			Quantity:          row.Quantity,
			Profit:            row.PriceTotal - row.CostTotal,
			Date:              truncateToDate(soldAt),
			Hour:              soldAt.Hour(),
			WeekdayName:       soldAt.Weekday().String(),
			FormattedHour:     FormatHour12(soldAt.Hour()),
			EmployeeFirstName: firstName,
		})
	}

	return normalized, nil
}

// FormatHour12 converte uma hora 0-23 para o rótulo de relógio de 12 horas
// usado nos eixos do mapa de calor. O mapeamento é total sobre 0-23.
func FormatHour12(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour == 12:
		return "12pm"
	case hour > 12:
		return fmt.Sprintf("%dpm", hour-12)
	default:
		return fmt.Sprintf("%dam", hour)
	}
}

func parseSoldAt(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("valor vazio")
	}

	for _, layout := range soldAtLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", trimmed)
}

// employeeFirstName extrai o primeiro token do nome completo e o capitaliza
func employeeFirstName(name string) (string, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", fmt.Errorf("nome vazio")
	}

	return capitalize(tokens[0]), nil
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
