package cart

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

var ErrEmptyCart = errors.New("cart is empty")

type UseCase interface {
	GetCart(ctx context.Context, sessionID string) (*dto.CartView, error)
	AddItem(ctx context.Context, sessionID, productID string) (*dto.CartView, error)
	AddItems(ctx context.Context, sessionID string, productIDs []string) (*dto.CartView, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*dto.CartView, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*dto.CartView, error)
	Clear(ctx context.Context, sessionID string) error
	// Deduct takes paid quantities off the cart, leaving anything added since untouched.
	Deduct(ctx context.Context, sessionID string, paid []Item) (*dto.CartView, error)

	Quote(ctx context.Context, sessionID, promoCode string) (*pricing.Quote, error)
}
