package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/i18n"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	catalog *catalog.Catalog
	tr      *i18n.Translator
	logger  logger.ZapLogger
}

func NewCatalogUseCase(c *catalog.Catalog, tr *i18n.Translator, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		catalog: c,
		tr:      tr,
		logger:  log,
	}
}

// LoadCatalog reads every product from repo and builds the validated catalog.
func LoadCatalog(ctx context.Context, repo catalog.Repository) (*catalog.Catalog, error) {
	products, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return catalog.New(products)
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	category, ok := catalog.ParseCategory(filters.CategoryKey)
	if !ok {
		uc.logger.Debug("unknown category requested", zap.String("category", filters.CategoryKey))
		return nil, fmt.Errorf("%w: %s", catalog.ErrCategoryNotFound, filters.CategoryKey)
	}

	products := catalog.Filter(uc.catalog.Products(), category)
	return catalog.Sort(products, catalog.ParseSortKey(filters.SortBy)), nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, ok := uc.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	return &p, nil
}

func (uc *catalogUseCase) ListCategories(ctx context.Context, lang string) ([]dto.CategoryInfo, error) {
	all := uc.catalog.Products()
	infos := make([]dto.CategoryInfo, 0, len(model.Categories))
	for _, c := range model.Categories {
		key := strings.ToLower(string(c))
		infos = append(infos, dto.CategoryInfo{
			Key:          key,
			Name:         string(c),
			Title:        uc.tr.T(lang, "category."+key+".title", nil),
			Description:  uc.tr.T(lang, "category."+key+".description", nil),
			ProductCount: len(catalog.Filter(all, c)),
		})
	}
	return infos, nil
}
