package handler

import (
	"context"
	"time"

	pb "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/grpcerr"
	"github.com/fekuna/omnipos-storefront-service/internal/payment"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ pb.PaymentServiceServer = (*PaymentHandler)(nil)

type PaymentHandler struct {
	pb.UnimplementedPaymentServiceServer
	uc     payment.UseCase
	logger logger.ZapLogger
}

func NewPaymentHandler(uc payment.UseCase, log logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PaymentHandler) StartPayment(ctx context.Context, req *pb.StartPaymentRequest) (*pb.PaymentResponse, error) {
	p, err := h.uc.StartPayment(ctx, session.ID(ctx), req.PromoCode)
	if err != nil {
		if grpcerr.Code(err) == codes.Internal {
			h.logger.Error("failed to start payment", zap.Error(err))
		}
		return nil, grpcerr.Status(err)
	}
	return PaymentToProto(p, time.Now()), nil
}

func (h *PaymentHandler) GetPayment(ctx context.Context, req *pb.PaymentRequest) (*pb.PaymentResponse, error) {
	if req.PaymentID == "" {
		return nil, status.Error(codes.InvalidArgument, "payment_id is required")
	}

	p, err := h.uc.GetPayment(ctx, session.ID(ctx), req.PaymentID)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return PaymentToProto(p, time.Now()), nil
}

func (h *PaymentHandler) CancelPayment(ctx context.Context, req *pb.PaymentRequest) (*pb.PaymentResponse, error) {
	if req.PaymentID == "" {
		return nil, status.Error(codes.InvalidArgument, "payment_id is required")
	}

	p, err := h.uc.CancelPayment(ctx, session.ID(ctx), req.PaymentID)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return PaymentToProto(p, time.Now()), nil
}

func PaymentToProto(p *payment.Payment, now time.Time) *pb.PaymentResponse {
	return &pb.PaymentResponse{
		PaymentID:   p.ID,
		Status:      string(p.Status),
		OrderNumber: p.OrderNumber,
		Total:       p.Quote.Display().Total,
		SecondsLeft: int64(p.TimeLeft(now).Seconds()),
		CreatedAt:   p.CreatedAt,
		ExpiresAt:   p.ExpiresAt,
		SettledAt:   p.SettledAt,
	}
}
