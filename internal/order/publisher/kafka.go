package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Config struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger logger.ZapLogger
}

func NewKafkaPublisher(cfg *Config, log logger.ZapLogger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}
	return newKafkaPublisher(w, cfg.Topic, log)
}

func newKafkaPublisher(w messageWriter, topic string, log logger.ZapLogger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic, logger: log}
}

// PublishOrderPlaced writes the event keyed by session so one shopper's orders stay ordered.
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, event order.OrderPlacedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Payload.SessionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
		Time: event.Timestamp,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to topic %s: %w", p.topic, err)
	}

	p.logger.Info("Published order event",
		zap.String("order_id", event.Payload.ID),
		zap.String("event_id", event.EventID),
		zap.String("topic", p.topic),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
