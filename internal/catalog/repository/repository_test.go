package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRepository(t *testing.T) {
	products, err := NewSeedRepository().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 9)

	// the seed must always build a valid catalog
	c, err := catalog.New(products)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Len())

	p, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "299.99", p.Price.String())
	assert.True(t, p.OriginalPrice.Valid)
	assert.True(t, p.IsBestSeller)
}

const catalogYAML = `
products:
  - id: "10"
    name: Desk Lamp Pillow
    price: "24.50"
    original_price: 30
    category: Pillows
    rating: 4.1
    review_count: 12
    on_sale: true
    image_url: https://cdn.example.com/10.jpg
  - id: "11"
    name: Shower Caddy
    price: 15
    category: Toiletries
`

func TestFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	products, err := NewFileRepository(path).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "24.5", products[0].Price.String())
	assert.Equal(t, "30", products[0].OriginalPrice.Decimal.String())
	assert.Equal(t, model.CategoryPillows, products[0].Category)
	require.NotNil(t, products[0].ImageURL)
	assert.False(t, products[1].OriginalPrice.Valid)
	assert.Nil(t, products[1].ImageURL)
}

func TestFileRepository_Errors(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml")).FindAll(context.Background())
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("products:\n  - id: x\n    price: cheap\n"))
	assert.ErrorContains(t, err, "price")

	_, err = ParseCatalog([]byte("products: [\n"))
	assert.Error(t, err)
}

func TestPGRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPGRepository(sqlx.NewDb(db, "sqlmock"))

	rows := sqlmock.NewRows(productColumns).
		AddRow("1", "Memory Foam Mattress - Queen Size", "299.99", "399.99", "Mattresses", 4.8, 324, true, true, nil).
		AddRow("5", "Ergonomic Memory Foam Pillow", "39.99", nil, "Pillows", 4.4, 67, false, false, "https://cdn.example.com/5.jpg")

	mock.ExpectQuery(`SELECT id, name, price, (.+) FROM products WHERE is_active = \$1 ORDER BY sort_order ASC, id ASC`).
		WithArgs(true).
		WillReturnRows(rows)

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "299.99", products[0].Price.String())
	assert.True(t, products[0].OriginalPrice.Valid)
	assert.Equal(t, model.CategoryMattresses, products[0].Category)
	assert.Nil(t, products[0].ImageURL)

	assert.False(t, products[1].OriginalPrice.Valid)
	require.NotNil(t, products[1].ImageURL)
	assert.Equal(t, 67, products[1].ReviewCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_FindAllError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPGRepository(sqlx.NewDb(db, "sqlmock"))
	mock.ExpectQuery(`SELECT (.+) FROM products`).WillReturnError(sqlmock.ErrCancelled)

	_, err = repo.FindAll(context.Background())
	assert.ErrorIs(t, err, sqlmock.ErrCancelled)
}
