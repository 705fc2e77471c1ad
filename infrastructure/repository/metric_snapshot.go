package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

const (
	metricSnapshotsTable = "metric_snapshots ms"
)

type MetricSnapshotRepository interface {
	GetByDate(date time.Time) (*domain.MetricSnapshotEntry, error)
	SaveOrUpdate(snapshot *domain.MetricSnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

func (r *metricSnapshotRepository) GetByDate(date time.Time) (*domain.MetricSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.dataset_id, ms.date, ms.summary, ms.row_count, ms.created_at, ms.updated_at").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de métricas: %w", err)
	}

	return snapshot, nil
}

// SaveOrUpdate insere o snapshot do dia ou atualiza o existente
func (r *metricSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricSnapshotEntry) error {
	summaryJSON, err := json.Marshal(snapshot.Summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas: %w", err)
	}

	query, args, err := squirrel.
		Insert("metric_snapshots").
		Columns("dataset_id", "date", "summary", "row_count", "created_at", "updated_at").
		Values(snapshot.DatasetID, snapshot.Date.Format(time.DateOnly), summaryJSON, snapshot.RowCount, time.Now(), time.Now()).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			dataset_id = EXCLUDED.dataset_id,
			summary = EXCLUDED.summary,
			row_count = EXCLUDED.row_count,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot de métricas: %w", err)
	}

	return nil
}

// DeleteOlderThan remove snapshots mais antigos que o número de dias informado
func (r *metricSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("metric_snapshots").
		Where(squirrel.Lt{"date": cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	return result.RowsAffected()
}

func (r *metricSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.MetricSnapshotEntry, error) {
	snapshot := &domain.MetricSnapshotEntry{}
	var summaryJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.DatasetID,
		&snapshot.Date,
		&summaryJSON,
		&snapshot.RowCount,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(summaryJSON, &snapshot.Summary); err != nil {
		return nil, fmt.Errorf("erro ao desserializar métricas: %w", err)
	}

	return snapshot, nil
}
