package domain

import "time"

// Fontes possíveis de um dataset
const (
	DatasetSourceSample = "sample"
	DatasetSourceUpload = "upload"
)

// Dataset é um snapshot imutável de uma carga de planilha: a tabela bruta
// e a tabela normalizada são produzidas uma única vez no carregamento e
// compartilhadas por todas as páginas. Nenhuma página altera o snapshot.
type Dataset struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Source     string                  `json:"source"`
	Table      TransactionTable        `json:"-"`
	Normalized []NormalizedTransaction `json:"-"`
	RowCount   int                     `json:"row_count"`
	LoadedAt   time.Time               `json:"loaded_at"`
}

// DatasetSummary é a representação enxuta usada em listagens
type DatasetSummary struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Source   string    `json:"source"`
	RowCount int       `json:"row_count"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Summary devolve a representação de listagem do dataset
func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		ID:       d.ID,
		Name:     d.Name,
		Source:   d.Source,
		RowCount: d.RowCount,
		LoadedAt: d.LoadedAt,
	}
}
