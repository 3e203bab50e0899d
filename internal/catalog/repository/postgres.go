package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/jmoiron/sqlx"
)

var productColumns = []string{
	"id", "name", "price", "original_price", "category",
	"rating", "review_count", "is_on_sale", "is_best_seller", "image_url",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// FindAll returns active products in merchandising order.
func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("sort_order ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product query: %w", err)
	}

	var products []model.Product
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}
