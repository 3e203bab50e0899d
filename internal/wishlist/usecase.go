package wishlist

import (
	"context"

	cartDTO "github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist/dto"
)

type UseCase interface {
	GetWishlist(ctx context.Context, sessionID string) (*dto.WishlistView, error)
	Add(ctx context.Context, sessionID, productID string) (*dto.WishlistView, error)
	Remove(ctx context.Context, sessionID, productID string) (*dto.WishlistView, error)
	Toggle(ctx context.Context, sessionID, productID string) (*dto.WishlistView, error)
	Clear(ctx context.Context, sessionID string) (*dto.WishlistView, error)
	AddAllToCart(ctx context.Context, sessionID string) (*cartDTO.CartView, error)
}
