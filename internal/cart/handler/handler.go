package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/cart/dto"
	catH "github.com/fekuna/omnipos-storefront-service/internal/catalog/handler"
	"github.com/fekuna/omnipos-storefront-service/internal/grpcerr"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ pb.CartServiceServer = (*CartHandler)(nil)

type CartHandler struct {
	pb.UnimplementedCartServiceServer
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CartHandler) GetCart(ctx context.Context, _ *emptypb.Empty) (*pb.CartResponse, error) {
	v, err := h.uc.GetCart(ctx, session.ID(ctx))
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return CartToProto(v), nil
}

func (h *CartHandler) AddItem(ctx context.Context, req *pb.AddItemRequest) (*pb.CartResponse, error) {
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	v, err := h.uc.AddItem(ctx, session.ID(ctx), req.ProductID)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return CartToProto(v), nil
}

func (h *CartHandler) AddItems(ctx context.Context, req *pb.AddItemsRequest) (*pb.CartResponse, error) {
	v, err := h.uc.AddItems(ctx, session.ID(ctx), req.ProductIDs)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return CartToProto(v), nil
}

func (h *CartHandler) SetQuantity(ctx context.Context, req *pb.SetQuantityRequest) (*pb.CartResponse, error) {
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	v, err := h.uc.SetQuantity(ctx, session.ID(ctx), req.ProductID, int(req.Quantity))
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return CartToProto(v), nil
}

func (h *CartHandler) RemoveItem(ctx context.Context, req *pb.RemoveItemRequest) (*pb.CartResponse, error) {
	v, err := h.uc.RemoveItem(ctx, session.ID(ctx), req.ProductID)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return CartToProto(v), nil
}

func (h *CartHandler) ClearCart(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.uc.Clear(ctx, session.ID(ctx)); err != nil {
		return nil, grpcerr.Status(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CartHandler) GetQuote(ctx context.Context, req *pb.QuoteRequest) (*pb.QuoteResponse, error) {
	q, err := h.uc.Quote(ctx, session.ID(ctx), req.PromoCode)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return QuoteToProto(q), nil
}

func CartToProto(v *dto.CartView) *pb.CartResponse {
	out := &pb.CartResponse{
		SessionID:  v.SessionID,
		Lines:      make([]*pb.CartLine, len(v.Lines)),
		TotalUnits: int32(v.TotalUnits),
	}
	for i, l := range v.Lines {
		out.Lines[i] = &pb.CartLine{
			Product:   catH.ProductToProto(&l.Product),
			Quantity:  int32(l.Quantity),
			LineTotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).StringFixed(2),
		}
	}
	return out
}

func QuoteToProto(q *pricing.Quote) *pb.QuoteResponse {
	out := &pb.QuoteResponse{
		Lines:        make([]*pb.QuoteLine, len(q.Lines)),
		PromoCode:    q.PromoCode,
		DiscountRate: q.DiscountRate.String(),
		FreeShipping: q.FreeShipping(),
		Exact: &pb.Totals{
			Subtotal: q.Subtotal.String(),
			Discount: q.DiscountAmount.String(),
			Shipping: q.Shipping.String(),
			Tax:      q.Tax.String(),
			Total:    q.Total.String(),
		},
	}
	for i, l := range q.Lines {
		out.Lines[i] = &pb.QuoteLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Quantity:  int32(l.Quantity),
			Amount:    l.Amount.StringFixed(2),
		}
	}

	d := q.Display()
	out.AmountToFreeShipping = d.AmountToFreeShipping
	out.Display = &pb.Totals{
		Subtotal: d.Subtotal,
		Discount: d.DiscountAmount,
		Shipping: d.Shipping,
		Tax:      d.Tax,
		Total:    d.Total,
	}
	return out
}
