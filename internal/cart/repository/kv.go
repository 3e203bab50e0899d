package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/kvstore"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const DefaultKeyPrefix = "cart"

type storedLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// KVRepository persists each cart as a JSON array of lines under cart:<session>.
// Updates are serialised within the process only.
type KVRepository struct {
	store  kvstore.Store
	prefix string
	logger logger.ZapLogger
	mu     sync.Mutex
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

func (r *KVRepository) Get(ctx context.Context, sessionID string) (cart.Ledger, error) {
	key := r.key(sessionID)
	data, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return cart.Ledger{}, fmt.Errorf("read cart %s: %w", key, err)
	}
	if !ok {
		return cart.Ledger{}, nil
	}

	var lines []storedLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		r.logger.Warn("corrupt cart data, starting empty", zap.String("key", key), zap.Error(err))
		return cart.Ledger{}, nil
	}
	l := cart.NewLedger()
	for _, line := range lines {
		l = l.SetQuantity(line.ProductID, line.Quantity)
	}
	return l, nil
}

func (r *KVRepository) Update(ctx context.Context, sessionID string, fn func(cart.Ledger) cart.Ledger) (cart.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.Get(ctx, sessionID)
	if err != nil {
		return cart.Ledger{}, err
	}
	next := fn(cur)
	if err := r.save(ctx, sessionID, next); err != nil {
		return cart.Ledger{}, err
	}
	return next, nil
}

func (r *KVRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, sessionID, cart.Ledger{})
}

func (r *KVRepository) save(ctx context.Context, sessionID string, l cart.Ledger) error {
	items := l.Items()
	lines := make([]storedLine, len(items))
	for i, it := range items {
		lines[i] = storedLine{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key(sessionID), string(data)); err != nil {
		return fmt.Errorf("write cart %s: %w", r.key(sessionID), err)
	}
	return nil
}
