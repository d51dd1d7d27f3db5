package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

const (
	productsTable       = "products"
	productOptionsTable = "product_options"
)

type ProductRepository interface {
	ListProducts() ([]*domain.Product, error)
	ListOptions() ([]*domain.ProductOption, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "product_name").
		From(productsTable).
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) ListOptions() ([]*domain.ProductOption, error) {
	query, args, err := squirrel.
		Select("id", "product_id", "option_name").
		From(productOptionsTable).
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

	options := make([]*domain.ProductOption, 0)
	for rows.Next() {
		option := &domain.ProductOption{}
		if err := rows.Scan(&option.ID, &option.ProductID, &option.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear opção: %w", err)
		}
		options = append(options, option)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return options, nil
}
