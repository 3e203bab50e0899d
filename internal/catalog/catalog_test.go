package catalog

import (
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price string, c model.Category, rating float64) model.Product {
	return model.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    decimal.RequireFromString(price),
		Category: c,
		Rating:   rating,
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

var fixture = []model.Product{
	product("1", "299.99", model.CategoryMattresses, 4.8),
	product("2", "49.99", model.CategoryPillows, 4.6),
	product("3", "89.99", model.CategoryToiletries, 4.7),
	product("4", "199.99", model.CategoryMattresses, 4.5),
	product("5", "39.99", model.CategoryPillows, 4.4),
	product("6", "59.99", model.CategoryToiletries, 4.6),
}

func TestFilter(t *testing.T) {
	assert.Equal(t, ids(fixture), ids(Filter(fixture, model.CategoryAll)))
	assert.Equal(t, []string{"2", "5"}, ids(Filter(fixture, model.CategoryPillows)))
	assert.Empty(t, Filter(fixture, "Lamps"))
	assert.Empty(t, Filter(nil, model.CategoryAll))
}

func TestSort(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortFeatured, []string{"1", "2", "3", "4", "5", "6"}},
		{SortNewest, []string{"1", "2", "3", "4", "5", "6"}},
		{SortPriceLow, []string{"5", "2", "6", "3", "4", "1"}},
		{SortPriceHigh, []string{"1", "4", "3", "6", "2", "5"}},
		// 2 and 6 tie on rating and keep their input order
		{SortRating, []string{"1", "3", "2", "6", "4", "5"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			before := ids(fixture)
			assert.Equal(t, tt.want, ids(Sort(fixture, tt.key)))
			assert.Equal(t, before, ids(fixture), "input must not be reordered")
		})
	}
}

func TestSort_StableTies(t *testing.T) {
	in := []model.Product{
		product("a", "10", model.CategoryPillows, 1),
		product("b", "5", model.CategoryPillows, 1),
		product("c", "10", model.CategoryPillows, 1),
		product("d", "5", model.CategoryPillows, 1),
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(Sort(in, SortPriceLow)))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(Sort(in, SortPriceHigh)))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortKey("price-ascending"))
	assert.Equal(t, SortPriceHigh, ParseSortKey("PRICE-HIGH"))
	assert.Equal(t, SortRating, ParseSortKey("rating"))
	assert.Equal(t, SortNewest, ParseSortKey("newest"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("cheapest-first"))
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("mattresses")
	assert.True(t, ok)
	assert.Equal(t, model.CategoryMattresses, c)

	c, ok = ParseCategory("")
	assert.True(t, ok)
	assert.Equal(t, model.CategoryAll, c)

	c, ok = ParseCategory("ALL")
	assert.True(t, ok)
	assert.Equal(t, model.CategoryAll, c)

	_, ok = ParseCategory("lamps")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	c, err := New(fixture)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())

	p, ok := c.Get("3")
	require.True(t, ok)
	assert.Equal(t, model.CategoryToiletries, p.Category)

	_, ok = c.Get("42")
	assert.False(t, ok)

	// returned slices are copies
	got := c.Products()
	got[0].Name = "changed"
	p, _ = c.Get("1")
	assert.Equal(t, "product 1", p.Name)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New([]model.Product{fixture[0], fixture[0]})
	assert.ErrorIs(t, err, ErrDuplicateProduct)

	bad := product("x", "-1", model.CategoryPillows, 3)
	_, err = New([]model.Product{bad})
	assert.ErrorIs(t, err, model.ErrInvalidProduct)
}
