package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

const (
	attributionResultsTable = "attribution_results"
)

type AttributionResultRepository interface {
	ReplaceForModel(ctx context.Context, modelType domain.ModelType, entries []*domain.AttributionResultEntry) error
	GetByModel(ctx context.Context, modelType domain.ModelType) ([]*domain.AttributionResultEntry, error)
	ListModels(ctx context.Context) ([]domain.ModelType, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type attributionResultRepository struct {
	conn *sqlite.Connection
}

func NewAttributionResultRepository(conn *sqlite.Connection) AttributionResultRepository {
	return &attributionResultRepository{
		conn: conn,
	}
}

// ReplaceForModel substitui o snapshot persistido de um modelo pelos novos
// resultados, dentro de uma transação. Canais que saíram do relatório são
// removidos.
func (r *attributionResultRepository) ReplaceForModel(
	ctx context.Context,
	modelType domain.ModelType,
	entries []*domain.AttributionResultEntry,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(attributionResultsTable).
			Where(squirrel.Eq{"model_type": string(modelType)}).
			PlaceholderFormat(squirrel.Question).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover snapshot anterior: %w", err)
		}

		for _, entry := range entries {
			var metricsJSON []byte
			if entry.Metrics != nil {
				metricsJSON, err = json.Marshal(entry.Metrics)
				if err != nil {
					return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
				}
			}

			insertSQL, insertArgs, err := squirrel.
				Insert(attributionResultsTable).
				Columns("model_type", "channel", "metrics").
				Values(string(modelType), entry.Channel, metricsJSON).
				Suffix(`
					ON CONFLICT (model_type, channel) DO UPDATE SET
						metrics = excluded.metrics,
						updated_at = CURRENT_TIMESTAMP
				`).
				PlaceholderFormat(squirrel.Question).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				return fmt.Errorf("erro ao inserir resultado de atribuição: %w", err)
			}
		}

		return nil
	})
}

func (r *attributionResultRepository) GetByModel(
	ctx context.Context,
	modelType domain.ModelType,
) ([]*domain.AttributionResultEntry, error) {
	query, args, err := squirrel.
		Select("ar.id, ar.model_type, ar.channel, ar.metrics, ar.created_at, ar.updated_at").
		From(attributionResultsTable + " ar").
		Where(squirrel.Eq{"ar.model_type": string(modelType)}).
		OrderBy("ar.channel ASC").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AttributionResultEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resultado de atribuição: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *attributionResultRepository) ListModels(ctx context.Context) ([]domain.ModelType, error) {
	query, args, err := squirrel.
		Select("DISTINCT model_type").
		From(attributionResultsTable).
		OrderBy("model_type ASC").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	models := make([]domain.ModelType, 0)
	for rows.Next() {
		var model string
		if err := rows.Scan(&model); err != nil {
			return nil, fmt.Errorf("erro ao escanear tipo de modelo: %w", err)
		}
		models = append(models, domain.ModelType(model))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return models, nil
}

func (r *attributionResultRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(attributionResultsTable).
		Where(squirrel.Lt{"updated_at": cutoff}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *attributionResultRepository) scanEntry(rows *sql.Rows) (*domain.AttributionResultEntry, error) {
	entry := &domain.AttributionResultEntry{}
	var modelType string
	var metricsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&modelType,
		&entry.Channel,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ModelType = domain.ModelType(modelType)

	if metricsJSON != nil {
		metrics := &domain.ChannelMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}
