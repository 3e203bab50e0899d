package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ParseSortKey accepts the storefront option values plus the long-form aliases.
// Anything unrecognised is treated as featured.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price-low", "price-ascending", "price-asc":
		return SortPriceLow
	case "price-high", "price-descending", "price-desc":
		return SortPriceHigh
	case "rating", "rating-descending":
		return SortRating
	case "newest":
		return SortNewest
	default:
		return SortFeatured
	}
}

// ParseCategory resolves a route key such as "mattresses" or "All".
func ParseCategory(key string) (model.Category, bool) {
	key = strings.TrimSpace(key)
	if key == "" || strings.EqualFold(key, string(model.CategoryAll)) {
		return model.CategoryAll, true
	}
	for _, c := range model.Categories {
		if strings.EqualFold(key, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Filter returns the products in category, or all of them for CategoryAll.
// Relative order is preserved and the input is left untouched.
func Filter(products []model.Product, category model.Category) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category == model.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably ordered copy of products.
func Sort(products []model.Product, key SortKey) []model.Product {
	out := slices.Clone(products)
	switch key {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b model.Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b model.Product) int { return b.Price.Cmp(a.Price) })
	case SortRating:
		slices.SortStableFunc(out, func(a, b model.Product) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		})
	}
	// featured and newest have no ranking field; keep input order
	return out
}

// Catalog is the immutable, validated product list.
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: slices.Clone(products),
		byID:     make(map[string]int, len(products)),
	}
	for i := range c.products {
		p := &c.products[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Products returns a copy in catalog order.
func (c *Catalog) Products() []model.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Get(id string) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
