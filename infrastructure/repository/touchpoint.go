package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/attribution-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

const (
	touchpointsTable = "touchpoints"

	// Tamanho dos lotes de inserção na carga de dados
	insertChunkSize = 1000
)

type TouchpointRepository interface {
	ReplaceAll(ctx context.Context, touchpoints []domain.Touchpoint) error
	AppendBatch(ctx context.Context, touchpoints []domain.Touchpoint) error
	ListConvertingJourneys(ctx context.Context) ([]*domain.Journey, error)
	ChannelStats(ctx context.Context) ([]*domain.ChannelStats, error)
	Stats(ctx context.Context) (*domain.TouchpointStats, error)
	DeleteAll(ctx context.Context) error
}

type touchpointRepository struct {
	conn *sqlite.Connection
}

func NewTouchpointRepository(conn *sqlite.Connection) TouchpointRepository {
	return &touchpointRepository{
		conn: conn,
	}
}

// ReplaceAll descarta os touchpoints existentes e carrega o novo conjunto em
// lotes, tudo dentro de uma única transação
func (r *touchpointRepository) ReplaceAll(ctx context.Context, touchpoints []domain.Touchpoint) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM touchpoints"); err != nil {
			return fmt.Errorf("erro ao limpar touchpoints existentes: %w", err)
		}

		return insertInChunks(ctx, tx, touchpoints)
	})
}

// AppendBatch insere touchpoints sem descartar os existentes
func (r *touchpointRepository) AppendBatch(ctx context.Context, touchpoints []domain.Touchpoint) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertInChunks(ctx, tx, touchpoints)
	})
}

func insertInChunks(ctx context.Context, tx *sql.Tx, touchpoints []domain.Touchpoint) error {
	for start := 0; start < len(touchpoints); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(touchpoints) {
			end = len(touchpoints)
		}

		builder := squirrel.
			Insert(touchpointsTable).
			Columns("customer_id", "channel", "timestamp", "channel_cost", "channel_type", "is_conversion", "purchase_value").
			PlaceholderFormat(squirrel.Question)

		for _, tp := range touchpoints[start:end] {
			builder = builder.Values(
				tp.CustomerID,
				tp.Channel,
				tp.Timestamp.UTC(),
				tp.ChannelCost,
				tp.ChannelType,
				tp.IsConversion,
				tp.PurchaseValue,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir lote de touchpoints: %w", err)
		}
	}

	return nil
}

// ListConvertingJourneys retorna as jornadas ordenadas de todos os clientes
// que converteram. O evento de conversão não entra na lista de touchpoints da
// jornada; ele define o momento e o valor da conversão.
func (r *touchpointRepository) ListConvertingJourneys(ctx context.Context) ([]*domain.Journey, error) {
	query, args, err := squirrel.
		Select("t.customer_id, t.channel, t.timestamp, t.channel_cost, t.channel_type, t.is_conversion, t.purchase_value").
		From(touchpointsTable + " t").
		Where(squirrel.Expr("t.customer_id IN (SELECT customer_id FROM touchpoints WHERE is_conversion = TRUE)")).
		OrderBy("t.customer_id ASC", "t.timestamp ASC").
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

	journeys := make([]*domain.Journey, 0)
	var current *domain.Journey

	for rows.Next() {
		var tp domain.Touchpoint
		var channelType sql.NullString

		err := rows.Scan(
			&tp.CustomerID,
			&tp.Channel,
			&tp.Timestamp,
			&tp.ChannelCost,
			&channelType,
			&tp.IsConversion,
			&tp.PurchaseValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear touchpoint: %w", err)
		}
		tp.ChannelType = channelType.String

		if current == nil || current.CustomerID != tp.CustomerID {
			current = &domain.Journey{CustomerID: tp.CustomerID}
			journeys = append(journeys, current)
		}

		if tp.IsConversion {
			// Um cliente tem no máximo uma conversão; quando há eventos
			// repetidos vale o primeiro momento e o maior valor de compra
			if current.ConversionTime.IsZero() {
				current.ConversionTime = tp.Timestamp
			}
			if tp.PurchaseValue > current.ConversionValue {
				current.ConversionValue = tp.PurchaseValue
			}
			continue
		}

		current.Touchpoints = append(current.Touchpoints, tp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return journeys, nil
}

// ChannelStats agrega aparições e custo por canal sobre os registros que não
// são conversões, incluindo canais vistos apenas por clientes que nunca
// converteram
func (r *touchpointRepository) ChannelStats(ctx context.Context) ([]*domain.ChannelStats, error) {
	query, args, err := squirrel.
		Select(
			"t.channel",
			"COUNT(DISTINCT t.customer_id) AS total_appearances",
			"COALESCE(SUM(t.channel_cost), 0) AS total_cost",
		).
		From(touchpointsTable + " t").
		Where(squirrel.Eq{"t.is_conversion": false}).
		GroupBy("t.channel").
		OrderBy("t.channel ASC").
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

	stats := make([]*domain.ChannelStats, 0)
	for rows.Next() {
		cs := &domain.ChannelStats{}
		if err := rows.Scan(&cs.Channel, &cs.TotalAppearances, &cs.TotalCost); err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas de canal: %w", err)
		}
		stats = append(stats, cs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

// Stats resume o conteúdo da tabela de touchpoints
func (r *touchpointRepository) Stats(ctx context.Context) (*domain.TouchpointStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_rows,
			COUNT(DISTINCT customer_id) AS total_customers,
			COUNT(DISTINCT CASE WHEN is_conversion = TRUE THEN customer_id END) AS total_conversions,
			COALESCE(SUM(CASE WHEN is_conversion = TRUE THEN purchase_value ELSE 0 END), 0) AS total_conversion_value
		FROM touchpoints
	`

	stats := &domain.TouchpointStats{}
	err := r.conn.QueryRow(ctx, query).Scan(
		&stats.TotalRows,
		&stats.TotalCustomers,
		&stats.TotalConversions,
		&stats.TotalConversionValue,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear estatísticas de touchpoints: %w", err)
	}

	return stats, nil
}

func (r *touchpointRepository) DeleteAll(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, "DELETE FROM touchpoints")
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	return nil
}
