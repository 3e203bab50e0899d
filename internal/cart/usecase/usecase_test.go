package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/cart/repository"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	catRepo "github.com/fekuna/omnipos-storefront-service/internal/catalog/repository"
	catUC "github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/pkg/i18n"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartUseCase(t *testing.T) cart.UseCase {
	t.Helper()
	c, err := catUC.LoadCatalog(context.Background(), catRepo.NewSeedRepository())
	require.NoError(t, err)
	tr, err := i18n.New()
	require.NoError(t, err)

	catalogUC := catUC.NewCatalogUseCase(c, tr, logger.NewNop())
	return NewCartUseCase(repository.NewMemoryRepository(), catalogUC, pricing.NewEngine(pricing.DefaultOptions()), logger.NewNop())
}

func TestCart_AddAndQuote(t *testing.T) {
	uc := newCartUseCase(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "s1", "1")
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "s1", "2")
	require.NoError(t, err)
	v, err := uc.AddItem(ctx, "s1", "2")
	require.NoError(t, err)

	require.Len(t, v.Lines, 2)
	assert.Equal(t, "1", v.Lines[0].Product.ID)
	assert.Equal(t, 2, v.Lines[1].Quantity)
	assert.Equal(t, 3, v.TotalUnits)

	q, err := uc.Quote(ctx, "s1", "student10")
	require.NoError(t, err)
	assert.Equal(t, "388.77", q.Display().Total)
}

func TestCart_UnknownProduct(t *testing.T) {
	uc := newCartUseCase(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "s1", "404")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	// one bad id leaves the cart untouched
	_, err = uc.AddItems(ctx, "s1", []string{"1", "404"})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	v, err := uc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, v.Lines)

	_, err = uc.SetQuantity(ctx, "s1", "404", 2)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	uc := newCartUseCase(t)
	ctx := context.Background()

	_, err := uc.AddItems(ctx, "s1", []string{"3", "5"})
	require.NoError(t, err)

	v, err := uc.SetQuantity(ctx, "s1", "3", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, v.TotalUnits)

	v, err = uc.SetQuantity(ctx, "s1", "3", 0)
	require.NoError(t, err)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, "5", v.Lines[0].Product.ID)

	// removing an absent line, even an unknown id, is a no-op
	v, err = uc.RemoveItem(ctx, "s1", "404")
	require.NoError(t, err)
	assert.Len(t, v.Lines, 1)

	v, err = uc.RemoveItem(ctx, "s1", "5")
	require.NoError(t, err)
	assert.Empty(t, v.Lines)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	uc := newCartUseCase(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "a", "1")
	require.NoError(t, err)

	v, err := uc.GetCart(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, v.Lines)

	require.NoError(t, uc.Clear(ctx, "a"))
	v, err = uc.GetCart(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, v.Lines)
}

func TestCart_DeductKeepsUnpaidLines(t *testing.T) {
	uc := newCartUseCase(t)
	ctx := context.Background()

	_, err := uc.AddItems(ctx, "a", []string{"1", "1", "2"})
	require.NoError(t, err)

	v, err := uc.Deduct(ctx, "a", []cart.Item{{ProductID: "1", Quantity: 1}, {ProductID: "2", Quantity: 1}, {ProductID: "9", Quantity: 1}})
	require.NoError(t, err)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, "1", v.Lines[0].Product.ID)
	assert.Equal(t, 1, v.Lines[0].Quantity)
}
