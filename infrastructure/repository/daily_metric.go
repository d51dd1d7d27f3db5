package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const dailyMetricsTable = "daily_metrics dm"

type DailyMetricRepository interface {
	ListWithChannel() ([]*domain.DailyMetric, error)
	InsertBatch(metrics []*domain.DailyMetric) error
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

// ListWithChannel retorna todas as métricas diárias com o nome do canal já
// resolvido, ordenadas da mais recente para a mais antiga, como o painel consome.
func (r *dailyMetricRepository) ListWithChannel() ([]*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(
			"dm.id", "dm.date", "dm.channel_id", "COALESCE(c.channel_name, '')",
			"dm.product_id", "dm.option_id",
			"COALESCE(dm.sales_count, 0)", "COALESCE(dm.unit_price, 0)",
			"COALESCE(dm.total_cost_price, 0)", "COALESCE(dm.ad_spend, 0)",
			"COALESCE(dm.revenue, 0)", "dm.created_at",
		).
		From(dailyMetricsTable).
		LeftJoin("channels c ON c.id = dm.channel_id").
		OrderBy("dm.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric, err := r.scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

// InsertBatch grava o lote de métricas de um lançamento em um único INSERT.
// A tabela é insert-only: correções entram como novos registros.
func (r *dailyMetricRepository) InsertBatch(metrics []*domain.DailyMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	queryBuilder := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns(
			"date", "channel_id", "product_id", "option_id",
			"sales_count", "unit_price", "total_cost_price", "ad_spend", "revenue",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, m := range metrics {
		queryBuilder = queryBuilder.Values(
			m.Date.Format(time.DateOnly),
			m.ChannelID,
			m.ProductID,
			m.OptionID,
			m.SalesCount,
			m.UnitPrice,
			m.TotalCostPrice,
			m.AdSpend,
			m.Revenue,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyMetricRepository) scanMetric(rows *sql.Rows) (*domain.DailyMetric, error) {
	metric := &domain.DailyMetric{}

	err := rows.Scan(
		&metric.ID,
		&metric.Date,
		&metric.ChannelID,
		&metric.ChannelName,
		&metric.ProductID,
		&metric.OptionID,
		&metric.SalesCount,
		&metric.UnitPrice,
		&metric.TotalCostPrice,
		&metric.AdSpend,
		&metric.Revenue,
		&metric.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return metric, nil
}
