package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/shopspring/decimal"
)

// SeedRepository serves the built-in storefront assortment.
type SeedRepository struct{}

func NewSeedRepository() *SeedRepository {
	return &SeedRepository{}
}

func (r *SeedRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return []model.Product{
		seed("1", "Memory Foam Mattress - Queen Size", "299.99", "399.99", model.CategoryMattresses, 4.8, 324, true, true),
		seed("2", "Premium Down Alternative Pillows (Set of 2)", "49.99", "69.99", model.CategoryPillows, 4.6, 156, true, false),
		seed("3", "Complete Toiletry Essentials Kit", "89.99", "", model.CategoryToiletries, 4.7, 89, false, true),
		seed("4", "Twin XL Memory Foam Mattress", "199.99", "249.99", model.CategoryMattresses, 4.5, 234, true, false),
		seed("5", "Ergonomic Memory Foam Pillow", "39.99", "", model.CategoryPillows, 4.4, 67, false, false),
		seed("6", "Organic Bath & Body Set", "59.99", "79.99", model.CategoryToiletries, 4.6, 123, true, false),
		seed("7", "Firm Support Mattress - Full Size", "249.99", "329.99", model.CategoryMattresses, 4.7, 189, true, false),
		seed("8", "Cooling Gel Pillow", "59.99", "79.99", model.CategoryPillows, 4.8, 145, true, false),
		seed("9", "Personal Care Starter Pack", "34.99", "", model.CategoryToiletries, 4.3, 78, false, false),
	}, nil
}

func seed(id, name, price, original string, c model.Category, rating float64, reviews int, onSale, bestSeller bool) model.Product {
	p := model.Product{
		ID:           id,
		Name:         name,
		Price:        decimal.RequireFromString(price),
		Category:     c,
		Rating:       rating,
		ReviewCount:  reviews,
		IsOnSale:     onSale,
		IsBestSeller: bestSeller,
	}
	if original != "" {
		p.OriginalPrice = decimal.NewNullDecimal(decimal.RequireFromString(original))
	}
	return p
}
