package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/kvstore"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestKVRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewKVRepository(store, "", logger.NewNop())

	s, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, repo.Save(ctx, "s1", wishlist.NewSet("1", "3")))

	raw, ok, err := store.Get(ctx, "wishlist:s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["1","3"]`, raw)

	got, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Equal(wishlist.NewSet("3", "1")))

	other, err := repo.Load(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
}

func TestKVRepository_CorruptDataLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "wishlist:s1", "{not json"))

	core, logs := observer.New(zapcore.WarnLevel)
	repo := NewKVRepository(store, "", logger.Wrap(zap.New(core)))
	s, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("key", "wishlist:s1")).Len())
}

func TestKVRepository_StoreErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewKVRepository(kvstore.NewRedisStore(db), "shop", logger.NewNop())

	mock.ExpectGet("shop:s1").SetErr(errors.New("i/o timeout"))
	_, err := repo.Load(context.Background(), "s1")
	assert.ErrorContains(t, err, "i/o timeout")

	mock.ExpectSet("shop:s1", `["2"]`, 0).SetErr(errors.New("READONLY"))
	err = repo.Save(context.Background(), "s1", wishlist.NewSet("2"))
	assert.ErrorContains(t, err, "READONLY")

	assert.NoError(t, mock.ExpectationsWereMet())
}
