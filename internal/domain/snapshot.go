package domain

import "time"

// MetricSnapshotEntry representa as métricas diárias do dataset de exemplo
// persistidas no banco pelo agendador
type MetricSnapshotEntry struct {
	ID        int64          `json:"id"`
	DatasetID string         `json:"dataset_id"`
	Date      time.Time      `json:"date"`
	Summary   SummaryMetrics `json:"summary"`
	RowCount  int            `json:"row_count"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UploadEntry é o registro de auditoria de um upload de planilha
type UploadEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RowCount   int       `json:"row_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
