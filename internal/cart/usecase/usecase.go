package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type cartUseCase struct {
	repo    cart.Repository
	catalog catalog.UseCase
	engine  *pricing.Engine
	logger  logger.ZapLogger
}

func NewCartUseCase(repo cart.Repository, cat catalog.UseCase, engine *pricing.Engine, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		repo:    repo,
		catalog: cat,
		engine:  engine,
		logger:  log,
	}
}

func (uc *cartUseCase) GetCart(ctx context.Context, sessionID string) (*dto.CartView, error) {
	l, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, sessionID, l)
}

func (uc *cartUseCase) AddItem(ctx context.Context, sessionID, productID string) (*dto.CartView, error) {
	return uc.AddItems(ctx, sessionID, []string{productID})
}

// AddItems adds one unit of each product. Every id is checked before the cart changes.
func (uc *cartUseCase) AddItems(ctx context.Context, sessionID string, productIDs []string) (*dto.CartView, error) {
	for _, id := range productIDs {
		if _, err := uc.catalog.GetProduct(ctx, id); err != nil {
			return nil, err
		}
	}

	l, err := uc.repo.Update(ctx, sessionID, func(l cart.Ledger) cart.Ledger {
		for _, id := range productIDs {
			l = l.Add(id)
		}
		return l
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("added to cart", zap.String("session_id", sessionID), zap.Strings("product_ids", productIDs))
	return uc.view(ctx, sessionID, l)
}

func (uc *cartUseCase) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*dto.CartView, error) {
	if quantity > 0 {
		if _, err := uc.catalog.GetProduct(ctx, productID); err != nil {
			return nil, err
		}
	}

	l, err := uc.repo.Update(ctx, sessionID, func(l cart.Ledger) cart.Ledger {
		return l.SetQuantity(productID, quantity)
	})
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, sessionID, l)
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, sessionID, productID string) (*dto.CartView, error) {
	l, err := uc.repo.Update(ctx, sessionID, func(l cart.Ledger) cart.Ledger {
		return l.Remove(productID)
	})
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, sessionID, l)
}

func (uc *cartUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.repo.Delete(ctx, sessionID)
}

func (uc *cartUseCase) Deduct(ctx context.Context, sessionID string, paid []cart.Item) (*dto.CartView, error) {
	l, err := uc.repo.Update(ctx, sessionID, func(l cart.Ledger) cart.Ledger {
		for _, it := range paid {
			l = l.Subtract(it.ProductID, it.Quantity)
		}
		return l
	})
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, sessionID, l)
}

func (uc *cartUseCase) Quote(ctx context.Context, sessionID, promoCode string) (*pricing.Quote, error) {
	v, err := uc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, pricing.Line{Product: l.Product, Quantity: l.Quantity})
	}
	q := uc.engine.Quote(lines, promoCode)
	return &q, nil
}

func (uc *cartUseCase) view(ctx context.Context, sessionID string, l cart.Ledger) (*dto.CartView, error) {
	v := &dto.CartView{
		SessionID:  sessionID,
		Lines:      make([]dto.CartLine, 0, l.Len()),
		TotalUnits: l.TotalUnits(),
	}
	for _, it := range l.Items() {
		p, err := uc.catalog.GetProduct(ctx, it.ProductID)
		if err != nil {
			// the catalog is immutable, so this only happens for ids stored before a reload
			uc.logger.Warn("dropping unknown product from cart view", zap.String("product_id", it.ProductID))
			v.TotalUnits -= it.Quantity
			continue
		}
		v.Lines = append(v.Lines, dto.CartLine{Product: *p, Quantity: it.Quantity})
	}
	return v, nil
}
