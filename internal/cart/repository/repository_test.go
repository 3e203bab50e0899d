package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/kvstore"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRepository(t *testing.T, repo cart.Repository) {
	t.Helper()
	ctx := context.Background()

	l, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	l, err = repo.Update(ctx, "s1", func(l cart.Ledger) cart.Ledger { return l.Add("2").Add("1").Add("2") })
	require.NoError(t, err)
	assert.Equal(t, 3, l.TotalUnits())

	l, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []cart.Item{{ProductID: "2", Quantity: 2}, {ProductID: "1", Quantity: 1}}, l.Items())

	other, err := repo.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	require.NoError(t, repo.Delete(ctx, "s1"))
	l, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryRepository())
}

func TestKVRepository_Memory(t *testing.T) {
	exerciseRepository(t, NewKVRepository(kvstore.NewMemoryStore(), "", logger.NewNop()))
}

func TestKVRepository_SQLite(t *testing.T) {
	s, err := kvstore.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "carts.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseRepository(t, NewKVRepository(s, "", logger.NewNop()))
}

func TestKVRepository_CorruptData(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "cart:s1", "not-json"))

	l, err := NewKVRepository(store, "", logger.NewNop()).Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
}
