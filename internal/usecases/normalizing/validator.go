// Package normalizing valida o esquema da planilha de vendas e deriva as
// colunas calculadas que os agregadores consomem.
package normalizing

import (
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// ValidateSchema verifica se a tabela possui todas as colunas obrigatórias.
// Retorna *domain.MissingColumnsError listando as colunas ausentes; é um
// predicado puro, sem efeitos colaterais.
func ValidateSchema(table domain.TransactionTable, required []domain.Column) error {
	present := make(map[domain.Column]struct{}, len(table.Columns))
	for _, c := range table.Columns {
		present[c] = struct{}{}
	}

	var missing []domain.Column
	for _, c := range required {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}

	if len(missing) > 0 {
		return &domain.MissingColumnsError{Missing: missing}
	}

	return nil
}
