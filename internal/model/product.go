package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAll        Category = "All"
	CategoryMattresses Category = "Mattresses"
	CategoryPillows    Category = "Pillows"
	CategoryToiletries Category = "Toiletries"
)

// Categories lists the concrete categories in display order. CategoryAll is not included.
var Categories = []Category{CategoryMattresses, CategoryPillows, CategoryToiletries}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID            string              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	OriginalPrice decimal.NullDecimal `db:"original_price" json:"original_price"` // Nullable, display only
	Category      Category            `db:"category" json:"category"`
	Rating        float64             `db:"rating" json:"rating"`
	ReviewCount   int                 `db:"review_count" json:"review_count"`
	IsOnSale      bool                `db:"is_on_sale" json:"is_on_sale"`
	IsBestSeller  bool                `db:"is_best_seller" json:"is_best_seller"`
	ImageURL      *string             `db:"image_url" json:"image_url"`
}

var ErrInvalidProduct = errors.New("invalid product")

func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w %s: negative price %s", ErrInvalidProduct, p.ID, p.Price)
	}
	if p.OriginalPrice.Valid && p.OriginalPrice.Decimal.LessThan(p.Price) {
		return fmt.Errorf("%w %s: original price %s below price %s", ErrInvalidProduct, p.ID, p.OriginalPrice.Decimal, p.Price)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w %s: unknown category %q", ErrInvalidProduct, p.ID, p.Category)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w %s: rating %v out of range", ErrInvalidProduct, p.ID, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("%w %s: negative review count", ErrInvalidProduct, p.ID)
	}
	return nil
}

// DiscountPercent is the whole-number markdown from the original price, 0 when there is none.
func (p *Product) DiscountPercent() int64 {
	if !p.OriginalPrice.Valid || p.OriginalPrice.Decimal.IsZero() {
		return 0
	}
	orig := p.OriginalPrice.Decimal
	return orig.Sub(p.Price).Div(orig).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
