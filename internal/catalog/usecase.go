package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListCategories(ctx context.Context, lang string) ([]dto.CategoryInfo, error)
}
