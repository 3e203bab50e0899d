package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	cartDTO "github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// DefaultCacheSize bounds how many session snapshots are held in memory.
const DefaultCacheSize = 4096

type wishlistUseCase struct {
	repo    wishlist.Repository
	catalog catalog.UseCase
	cart    cart.UseCase
	logger  logger.ZapLogger

	// loaded snapshots per session; only advanced after a successful save
	mu    sync.Mutex
	cache *lru.Cache
}

func NewWishlistUseCase(repo wishlist.Repository, cat catalog.UseCase, cartUC cart.UseCase, log logger.ZapLogger) wishlist.UseCase {
	return newWithCacheSize(repo, cat, cartUC, log, DefaultCacheSize)
}

func newWithCacheSize(repo wishlist.Repository, cat catalog.UseCase, cartUC cart.UseCase, log logger.ZapLogger, size int) *wishlistUseCase {
	cache, err := lru.New(size)
	if err != nil {
		// only a non-positive size fails
		panic(err)
	}
	return &wishlistUseCase{
		repo:    repo,
		catalog: cat,
		cart:    cartUC,
		logger:  log,
		cache:   cache,
	}
}

// snapshot returns the cached set, loading it on a miss. A failed load is not cached,
// so the next call reads the store again. Caller holds mu.
func (uc *wishlistUseCase) snapshot(ctx context.Context, sessionID string) (wishlist.Set, error) {
	if v, ok := uc.cache.Get(sessionID); ok {
		return v.(wishlist.Set), nil
	}
	s, err := uc.repo.Load(ctx, sessionID)
	if err != nil {
		return wishlist.Set{}, err
	}
	uc.cache.Add(sessionID, s)
	return s, nil
}

// GetWishlist shows an empty list while the store is unreadable.
func (uc *wishlistUseCase) GetWishlist(ctx context.Context, sessionID string) (*dto.WishlistView, error) {
	uc.mu.Lock()
	s, err := uc.snapshot(ctx, sessionID)
	uc.mu.Unlock()
	if err != nil {
		uc.logger.Warn("failed to read wishlist, showing empty", zap.String("session_id", sessionID), zap.Error(err))
	}

	return uc.view(ctx, sessionID, s), nil
}

func (uc *wishlistUseCase) Add(ctx context.Context, sessionID, productID string) (*dto.WishlistView, error) {
	if _, err := uc.catalog.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, func(s wishlist.Set) wishlist.Set { return s.Add(productID) })
}

func (uc *wishlistUseCase) Remove(ctx context.Context, sessionID, productID string) (*dto.WishlistView, error) {
	return uc.mutate(ctx, sessionID, func(s wishlist.Set) wishlist.Set { return s.Remove(productID) })
}

func (uc *wishlistUseCase) Toggle(ctx context.Context, sessionID, productID string) (*dto.WishlistView, error) {
	if _, err := uc.catalog.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, sessionID, func(s wishlist.Set) wishlist.Set { return s.Toggle(productID) })
}

func (uc *wishlistUseCase) Clear(ctx context.Context, sessionID string) (*dto.WishlistView, error) {
	return uc.mutate(ctx, sessionID, func(wishlist.Set) wishlist.Set { return wishlist.Set{} })
}

// AddAllToCart adds one unit of every wishlisted product. The wishlist is kept.
func (uc *wishlistUseCase) AddAllToCart(ctx context.Context, sessionID string) (*cartDTO.CartView, error) {
	v, err := uc.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(v.Products))
	for _, p := range v.Products {
		ids = append(ids, p.ID)
	}
	return uc.cart.AddItems(ctx, sessionID, ids)
}

// mutate saves the whole set; the cached snapshot advances only when the save succeeds.
// Nothing is written unless the current set was read.
func (uc *wishlistUseCase) mutate(ctx context.Context, sessionID string, fn func(wishlist.Set) wishlist.Set) (*dto.WishlistView, error) {
	uc.mu.Lock()
	cur, err := uc.snapshot(ctx, sessionID)
	if err != nil {
		uc.mu.Unlock()
		uc.logger.Error("failed to read wishlist", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	next := fn(cur)
	if err := uc.repo.Save(ctx, sessionID, next); err != nil {
		uc.mu.Unlock()
		uc.logger.Error("failed to persist wishlist", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("save wishlist: %w", err)
	}
	uc.cache.Add(sessionID, next)
	uc.mu.Unlock()

	return uc.view(ctx, sessionID, next), nil
}

func (uc *wishlistUseCase) view(ctx context.Context, sessionID string, s wishlist.Set) *dto.WishlistView {
	v := &dto.WishlistView{SessionID: sessionID}
	for _, id := range s.IDs() {
		p, err := uc.catalog.GetProduct(ctx, id)
		if err != nil {
			// persisted ids may outlive the catalog they were saved against
			uc.logger.Debug("skipping unknown wishlist product", zap.String("product_id", id))
			continue
		}
		v.Products = append(v.Products, *p)
	}
	return v
}
