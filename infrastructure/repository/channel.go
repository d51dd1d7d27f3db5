package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

const channelsTable = "channels"

type ChannelRepository interface {
	ListChannels() ([]*domain.Channel, error)
}

type channelRepository struct {
	conn *postgres.Connection
}

func NewChannelRepository(conn *postgres.Connection) ChannelRepository {
	return &channelRepository{
		conn: conn,
	}
}

func (r *channelRepository) ListChannels() ([]*domain.Channel, error) {
	query, args, err := squirrel.
		Select("id", "channel_name").
		From(channelsTable).
		OrderBy("id ASC").
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

	channels := make([]*domain.Channel, 0)
	for rows.Next() {
		channel := &domain.Channel{}
		if err := rows.Scan(&channel.ID, &channel.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear canal: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}
