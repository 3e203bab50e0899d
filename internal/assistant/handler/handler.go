package handler

import (
	"context"

	pb "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/assistant"
	"github.com/fekuna/omnipos-storefront-service/internal/grpcerr"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ pb.AssistantServiceServer = (*AssistantHandler)(nil)

type AssistantHandler struct {
	pb.UnimplementedAssistantServiceServer
	uc     assistant.UseCase
	logger logger.ZapLogger
}

func NewAssistantHandler(uc assistant.UseCase, log logger.ZapLogger) *AssistantHandler {
	return &AssistantHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AssistantHandler) Greeting(ctx context.Context, _ *emptypb.Empty) (*pb.MessageResponse, error) {
	return messageToProto(h.uc.Greeting(ctx, session.FromContext(ctx).Language)), nil
}

func (h *AssistantHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	msg, err := h.uc.Send(ctx, session.FromContext(ctx).Language, req.Text)
	if err != nil {
		return nil, grpcerr.Status(err)
	}
	return messageToProto(msg), nil
}

func messageToProto(m *assistant.Message) *pb.MessageResponse {
	return &pb.MessageResponse{
		ID:        m.ID,
		Text:      m.Text,
		Topic:     string(m.Topic),
		FromBot:   m.FromBot,
		Timestamp: m.Timestamp,
	}
}
