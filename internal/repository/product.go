package repository

import (
	"context"
	"fmt"

	"github.com/polystack/polystack/internal/model"
)

// CreateProduct inserts a new product and fills in the server-assigned fields.
func (r *Repository) CreateProduct(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, price)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, product.Name, product.Price).
		Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if mapped := classifyConstraint(err, ErrNameExists); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// ListProducts returns every product in primary-key order.
// An empty table yields an empty slice, never nil.
func (r *Repository) ListProducts(ctx context.Context) ([]*model.Product, error) {
	query := `
		SELECT id, name, price::float8, created_at
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*model.Product, 0)
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
