package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const channelOptionPricesTable = "channel_option_prices"

type PriceRepository interface {
	ListPrices() ([]*domain.ChannelOptionPrice, error)
	UpsertPrices(ctx context.Context, prices []*domain.ChannelOptionPrice) error
}

type priceRepository struct {
	conn *postgres.Connection
}

func NewPriceRepository(conn *postgres.Connection) PriceRepository {
	return &priceRepository{
		conn: conn,
	}
}

func (r *priceRepository) ListPrices() ([]*domain.ChannelOptionPrice, error) {
	query, args, err := squirrel.
		Select("channel_id", "option_id", "price").
		From(channelOptionPricesTable).
		OrderBy("channel_id ASC", "option_id ASC").
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

	prices := make([]*domain.ChannelOptionPrice, 0)
	for rows.Next() {
		price := &domain.ChannelOptionPrice{}
		if err := rows.Scan(&price.ChannelID, &price.OptionID, &price.Price); err != nil {
			return nil, fmt.Errorf("erro ao escanear preço: %w", err)
		}
		prices = append(prices, price)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return prices, nil
}

// UpsertPrices grava os preços em lote dentro de uma transação. O conflito em
// (channel_id, option_id) atualiza a linha existente, nunca cria duplicata.
func (r *priceRepository) UpsertPrices(ctx context.Context, prices []*domain.ChannelOptionPrice) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, price := range prices {
			query, args, err := squirrel.StatementBuilder.
				Insert(channelOptionPricesTable).
				Columns("channel_id", "option_id", "price").
				Values(price.ChannelID, price.OptionID, price.Price).
				Suffix(`
					ON CONFLICT (channel_id, option_id) DO UPDATE SET
						price = EXCLUDED.price,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}
