package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/grpcerr"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ pb.CatalogServiceServer = (*CatalogHandler)(nil)

type CatalogHandler struct {
	pb.UnimplementedCatalogServiceServer
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CatalogHandler) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	products, err := h.uc.ListProducts(ctx, &dto.ProductFilters{
		CategoryKey: req.Category,
		SortBy:      req.SortBy,
	})
	if err != nil {
		return nil, grpcerr.Status(err)
	}

	out := make([]*pb.Product, len(products))
	for i := range products {
		out[i] = ProductToProto(&products[i])
	}
	return &pb.ListProductsResponse{
		Products: out,
		Total:    int32(len(out)),
	}, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	p, err := h.uc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return &pb.GetProductResponse{Product: ProductToProto(p)}, nil
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*pb.ListCategoriesResponse, error) {
	cats, err := h.uc.ListCategories(ctx, session.FromContext(ctx).Language)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		return nil, grpcerr.Status(err)
	}

	out := make([]*pb.Category, len(cats))
	for i, c := range cats {
		out[i] = &pb.Category{
			Key:          c.Key,
			Name:         c.Name,
			Title:        c.Title,
			Description:  c.Description,
			ProductCount: int32(c.ProductCount),
		}
	}
	return &pb.ListCategoriesResponse{Categories: out}, nil
}

// ProductToProto is shared by every handler that returns products.
func ProductToProto(p *model.Product) *pb.Product {
	out := &pb.Product{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price.StringFixed(2),
		DiscountPercent: p.DiscountPercent(),
		Category:        string(p.Category),
		Rating:          p.Rating,
		ReviewCount:     int32(p.ReviewCount),
		IsOnSale:        p.IsOnSale,
		IsBestSeller:    p.IsBestSeller,
	}
	if p.OriginalPrice.Valid {
		out.OriginalPrice = p.OriginalPrice.Decimal.StringFixed(2)
	}
	if p.ImageURL != nil {
		out.ImageURL = *p.ImageURL
	}
	return out
}
