package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/kvstore"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const DefaultKeyPrefix = "wishlist"

type KVRepository struct {
	store  kvstore.Store
	prefix string
	logger logger.ZapLogger
}

func NewKVRepository(store kvstore.Store, prefix string, log logger.ZapLogger) *KVRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &KVRepository{store: store, prefix: prefix, logger: log}
}

func (r *KVRepository) key(sessionID string) string {
	return r.prefix + ":" + sessionID
}

func (r *KVRepository) Load(ctx context.Context, sessionID string) (wishlist.Set, error) {
	key := r.key(sessionID)
	data, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return wishlist.Set{}, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return wishlist.Set{}, nil
	}

	s, err := wishlist.Decode(data)
	if err != nil {
		r.logger.Warn("corrupt wishlist data, starting empty", zap.String("key", key), zap.Error(err))
		return wishlist.Set{}, nil
	}
	return s, nil
}

func (r *KVRepository) Save(ctx context.Context, sessionID string, s wishlist.Set) error {
	data, err := wishlist.Encode(s)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key(sessionID), data)
}
