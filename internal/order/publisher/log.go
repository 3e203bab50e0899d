package publisher

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

// LogPublisher only logs events. Used when no Kafka brokers are configured.
type LogPublisher struct {
	logger logger.ZapLogger
}

func NewLogPublisher(log logger.ZapLogger) *LogPublisher {
	return &LogPublisher{logger: log}
}

func (p *LogPublisher) PublishOrderPlaced(ctx context.Context, event order.OrderPlacedEvent) error {
	p.logger.Info("Order placed",
		zap.String("order_id", event.Payload.ID),
		zap.String("session_id", event.Payload.SessionID),
		zap.Int("items", len(event.Payload.Items)),
		zap.String("total", event.Payload.Totals.Total),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
