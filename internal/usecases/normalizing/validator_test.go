package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name            string
		columns         []domain.Column
		expectedMissing []domain.Column
	}{
		{
			name:    "Planilha com todas as colunas obrigatórias deve passar",
			columns: domain.RequiredColumns(),
		},
		{
			name:    "Colunas extras desconhecidas não invalidam a planilha",
			columns: append(domain.RequiredColumns(), domain.ColumnQuantity, domain.Column("loja")),
		},
		{
			name: "Uma coluna obrigatória ausente deve ser reportada",
			columns: []domain.Column{
				domain.ColumnSoldAt,
				domain.ColumnInvoiceID,
				domain.ColumnCostTotal,
				domain.ColumnPriceTotal,
				domain.ColumnSubCategory,
				domain.ColumnDaysOnHand,
				domain.ColumnTransactionType,
				domain.ColumnEmployeeRole,
			},
			expectedMissing: []domain.Column{domain.ColumnEmployeeName},
		},
		{
			name: "Todas as colunas ausentes devem ser listadas de uma vez",
			columns: []domain.Column{
				domain.ColumnSoldAt,
				domain.ColumnInvoiceID,
			},
			expectedMissing: []domain.Column{
				domain.ColumnCostTotal,
				domain.ColumnPriceTotal,
				domain.ColumnSubCategory,
				domain.ColumnDaysOnHand,
				domain.ColumnTransactionType,
				domain.ColumnEmployeeRole,
				domain.ColumnEmployeeName,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := domain.TransactionTable{Columns: tt.columns}

			err := ValidateSchema(table, domain.RequiredColumns())

			if len(tt.expectedMissing) == 0 {
				assert.NoError(t, err)
				return
			}

			var missingErr *domain.MissingColumnsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.expectedMissing, missingErr.Missing)
		})
	}
}

func TestValidateSchema_naoAlteraATabela(t *testing.T) {
	columns := []domain.Column{domain.ColumnSoldAt}
	table := domain.TransactionTable{Columns: columns}

	_ = ValidateSchema(table, domain.RequiredColumns())

	assert.Equal(t, []domain.Column{domain.ColumnSoldAt}, table.Columns)
}
