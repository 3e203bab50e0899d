package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	cartH "github.com/fekuna/omnipos-storefront-service/internal/cart/handler"
	catH "github.com/fekuna/omnipos-storefront-service/internal/catalog/handler"
	"github.com/fekuna/omnipos-storefront-service/internal/grpcerr"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ pb.WishlistServiceServer = (*WishlistHandler)(nil)

type WishlistHandler struct {
	pb.UnimplementedWishlistServiceServer
	uc     wishlist.UseCase
	logger logger.ZapLogger
}

func NewWishlistHandler(uc wishlist.UseCase, log logger.ZapLogger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *WishlistHandler) GetWishlist(ctx context.Context, _ *emptypb.Empty) (*pb.WishlistResponse, error) {
	return h.respond(h.uc.GetWishlist(ctx, session.ID(ctx)))
}

func (h *WishlistHandler) AddToWishlist(ctx context.Context, req *pb.WishlistItemRequest) (*pb.WishlistResponse, error) {
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	return h.respond(h.uc.Add(ctx, session.ID(ctx), req.ProductID))
}

func (h *WishlistHandler) RemoveFromWishlist(ctx context.Context, req *pb.WishlistItemRequest) (*pb.WishlistResponse, error) {
	return h.respond(h.uc.Remove(ctx, session.ID(ctx), req.ProductID))
}

func (h *WishlistHandler) ToggleWishlist(ctx context.Context, req *pb.WishlistItemRequest) (*pb.WishlistResponse, error) {
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	return h.respond(h.uc.Toggle(ctx, session.ID(ctx), req.ProductID))
}

func (h *WishlistHandler) ClearWishlist(ctx context.Context, _ *emptypb.Empty) (*pb.WishlistResponse, error) {
	return h.respond(h.uc.Clear(ctx, session.ID(ctx)))
}

func (h *WishlistHandler) AddAllToCart(ctx context.Context, _ *emptypb.Empty) (*pb.CartResponse, error) {
	v, err := h.uc.AddAllToCart(ctx, session.ID(ctx))
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return cartH.CartToProto(v), nil
}

func (h *WishlistHandler) respond(v *dto.WishlistView, err error) (*pb.WishlistResponse, error) {
	if err != nil {
		return nil, grpcerr.Status(err)
	}

	out := &pb.WishlistResponse{
		SessionID: v.SessionID,
		Products:  make([]*pb.Product, len(v.Products)),
		Count:     int32(len(v.Products)),
	}
	for i := range v.Products {
		out.Products[i] = catH.ProductToProto(&v.Products[i])
	}
	return out, nil
}
