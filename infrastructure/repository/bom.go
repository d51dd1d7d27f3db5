package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

const bomTable = "bom b"

type BomRepository interface {
	ListByOptionID(optionID int64) ([]*domain.BomItem, error)
}

type bomRepository struct {
	conn *postgres.Connection
}

func NewBomRepository(conn *postgres.Connection) BomRepository {
	return &bomRepository{
		conn: conn,
	}
}

// ListByOptionID retorna a lista de materiais da opção com o preço unitário
// vigente de cada peça, usado para o retrato de custo no lançamento de vendas.
func (r *bomRepository) ListByOptionID(optionID int64) ([]*domain.BomItem, error) {
	query, args, err := squirrel.
		Select("b.option_id", "b.part_id", "COALESCE(b.quantity, 0)", "COALESCE(p.current_unit_price, 0)").
		From(bomTable).
		LeftJoin("parts p ON p.id = b.part_id").
		Where(squirrel.Eq{"b.option_id": optionID}).
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

	items := make([]*domain.BomItem, 0)
	for rows.Next() {
		item := &domain.BomItem{}
		if err := rows.Scan(&item.OptionID, &item.PartID, &item.Quantity, &item.PartUnitPrice); err != nil {
			return nil, fmt.Errorf("erro ao escanear item da BOM: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
