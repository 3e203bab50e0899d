package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
)

// MemoryRepository holds carts for the lifetime of the process.
type MemoryRepository struct {
	mu      sync.Mutex
	ledgers map[string]cart.Ledger
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{ledgers: make(map[string]cart.Ledger)}
}

func (r *MemoryRepository) Get(ctx context.Context, sessionID string) (cart.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledgers[sessionID], nil
}

func (r *MemoryRepository) Update(ctx context.Context, sessionID string, fn func(cart.Ledger) cart.Ledger) (cart.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := fn(r.ledgers[sessionID])
	if next.IsEmpty() {
		delete(r.ledgers, sessionID)
	} else {
		r.ledgers[sessionID] = next
	}
	return next, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ledgers, sessionID)
	return nil
}
