package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

const partsTable = "parts"

type PartRepository interface {
	ListParts() ([]*domain.Part, error)
	GetPartByID(partID int64) (*domain.Part, error)
	UpdateStock(partID int64, newStock int64) error
}

type partRepository struct {
	conn *postgres.Connection
}

func NewPartRepository(conn *postgres.Connection) PartRepository {
	return &partRepository{
		conn: conn,
	}
}

func (r *partRepository) ListParts() ([]*domain.Part, error) {
	query, args, err := squirrel.
		Select("id", "part_name", "COALESCE(current_stock, 0)", "COALESCE(safety_stock, 0)", "COALESCE(current_unit_price, 0)", "updated_at").
		From(partsTable).
		OrderBy("part_name ASC").
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

	parts := make([]*domain.Part, 0)
	for rows.Next() {
		part := &domain.Part{}
		err := rows.Scan(
			&part.ID,
			&part.Name,
			&part.CurrentStock,
			&part.SafetyStock,
			&part.CurrentUnitPrice,
			&part.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear peça: %w", err)
		}
		parts = append(parts, part)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return parts, nil
}

func (r *partRepository) GetPartByID(partID int64) (*domain.Part, error) {
	query, args, err := squirrel.
		Select("id", "part_name", "COALESCE(current_stock, 0)", "COALESCE(safety_stock, 0)", "COALESCE(current_unit_price, 0)", "updated_at").
		From(partsTable).
		Where(squirrel.Eq{"id": partID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	part := &domain.Part{}
	err = r.conn.QueryRow(query, args...).Scan(
		&part.ID,
		&part.Name,
		&part.CurrentStock,
		&part.SafetyStock,
		&part.CurrentUnitPrice,
		&part.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear peça: %w", err)
	}

	return part, nil
}

// UpdateStock grava o novo saldo absoluto da peça. Última escrita vence:
// não há verificação otimista de concorrência nesta ferramenta interna.
func (r *partRepository) UpdateStock(partID int64, newStock int64) error {
	query, args, err := squirrel.
		Update(partsTable).
		Set("current_stock", newStock).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": partID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
