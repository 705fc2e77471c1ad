package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

const (
	uploadsTable = "dataset_uploads du"
)

type UploadRepository interface {
	SaveUpload(dataset *domain.Dataset) error
	ListUploads(limit int) ([]*domain.UploadEntry, error)
}

type uploadRepository struct {
	conn *postgres.Connection
}

func NewUploadRepository(conn *postgres.Connection) UploadRepository {
	return &uploadRepository{
		conn: conn,
	}
}

// SaveUpload registra a trilha de auditoria de um upload de planilha
func (r *uploadRepository) SaveUpload(dataset *domain.Dataset) error {
	query, args, err := squirrel.
		Insert("dataset_uploads").
		Columns("id", "name", "row_count", "uploaded_at").
		Values(dataset.ID, dataset.Name, dataset.RowCount, dataset.LoadedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao registrar upload: %w", err)
	}

	return nil
}

func (r *uploadRepository) ListUploads(limit int) ([]*domain.UploadEntry, error) {
	query, args, err := squirrel.
		Select("du.id, du.name, du.row_count, du.uploaded_at").
		From(uploadsTable).
		OrderBy("du.uploaded_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	uploads := make([]*domain.UploadEntry, 0)
	for rows.Next() {
		entry := &domain.UploadEntry{}
		var uploadedAt time.Time

		if err := rows.Scan(&entry.ID, &entry.Name, &entry.RowCount, &uploadedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear upload: %w", err)
		}

		entry.UploadedAt = uploadedAt
		uploads = append(uploads, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return uploads, nil
}
