package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/assistant"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/internal/scheduler"
	"github.com/fekuna/omnipos-storefront-service/pkg/i18n"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assistantUseCase struct {
	tr         *i18n.Translator
	sched      *scheduler.Scheduler
	replyDelay time.Duration
	pricing    pricing.Options
	logger     logger.ZapLogger
}

func NewAssistantUseCase(tr *i18n.Translator, sched *scheduler.Scheduler, replyDelay time.Duration, opts pricing.Options, log logger.ZapLogger) assistant.UseCase {
	return &assistantUseCase{
		tr:         tr,
		sched:      sched,
		replyDelay: replyDelay,
		pricing:    opts,
		logger:     log,
	}
}

func (uc *assistantUseCase) Greeting(ctx context.Context, lang string) *assistant.Message {
	return uc.message(lang, assistant.TopicGreeting)
}

func (uc *assistantUseCase) Send(ctx context.Context, lang, text string) (*assistant.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, assistant.ErrEmptyMessage
	}

	topic := assistant.Classify(text)
	if err := uc.sched.Sleep(ctx, uc.replyDelay); err != nil {
		uc.logger.Debug("assistant reply abandoned", zap.Error(err))
		return nil, err
	}
	return uc.message(lang, topic), nil
}

func (uc *assistantUseCase) message(lang string, topic assistant.Topic) *assistant.Message {
	// only the shipping reply is templated
	data := map[string]any{
		"Threshold": uc.pricing.FreeShippingThreshold.String(),
		"Fee":       uc.pricing.ShippingFee.StringFixed(2),
	}
	return &assistant.Message{
		ID:        uuid.NewString(),
		Text:      uc.tr.T(lang, topic.MessageID(), data),
		FromBot:   true,
		Topic:     topic,
		Timestamp: time.Now().UTC(),
	}
}
