package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/fekuna/omnipos-storefront-service/internal/payment"
	"github.com/fekuna/omnipos-storefront-service/internal/scheduler"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 10 * time.Second

type Options struct {
	CompleteAfter time.Duration
	Deadline      time.Duration
	// Retention is how long a settled payment stays queryable. Zero keeps it forever.
	Retention time.Duration
}

type entry struct {
	p        payment.Payment
	complete *scheduler.Handle
	expire   *scheduler.Handle
}

type paymentUseCase struct {
	cart      cart.UseCase
	publisher order.Publisher
	sched     *scheduler.Scheduler
	opts      Options
	logger    logger.ZapLogger
	now       func() time.Time

	mu       sync.Mutex
	payments map[string]*entry
	seqDay   string
	seq      int
}

func NewPaymentUseCase(cartUC cart.UseCase, pub order.Publisher, sched *scheduler.Scheduler, opts Options, log logger.ZapLogger) payment.UseCase {
	return &paymentUseCase{
		cart:      cartUC,
		publisher: pub,
		sched:     sched,
		opts:      opts,
		logger:    log,
		now:       time.Now,
		payments:  make(map[string]*entry),
	}
}

// StartPayment prices the session's cart and opens a pending payment. It completes after
// CompleteAfter or fails at Deadline, whichever comes first.
func (uc *paymentUseCase) StartPayment(ctx context.Context, sessionID, promoCode string) (*payment.Payment, error) {
	view, err := uc.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, cart.ErrEmptyCart
	}

	q, err := uc.cart.Quote(ctx, sessionID, promoCode)
	if err != nil {
		return nil, fmt.Errorf("quote cart: %w", err)
	}

	now := uc.now().UTC()
	e := &entry{p: payment.Payment{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Status:    payment.StatusPending,
		Quote:     *q,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.opts.Deadline),
	}}
	id := e.p.ID

	uc.mu.Lock()
	uc.payments[id] = e
	e.complete = uc.sched.Schedule(uc.opts.CompleteAfter, func() { uc.settle(id, payment.StatusCompleted) })
	e.expire = uc.sched.Schedule(uc.opts.Deadline, func() { uc.settle(id, payment.StatusFailed) })
	p := e.p
	uc.mu.Unlock()

	uc.logger.Info("Payment started",
		zap.String("payment_id", id),
		zap.String("session_id", sessionID),
		zap.String("total", q.Display().Total),
	)
	return &p, nil
}

func (uc *paymentUseCase) GetPayment(ctx context.Context, sessionID, paymentID string) (*payment.Payment, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.payments[paymentID]
	if !ok || e.p.SessionID != sessionID {
		return nil, payment.ErrPaymentNotFound
	}
	p := e.p
	return &p, nil
}

func (uc *paymentUseCase) CancelPayment(ctx context.Context, sessionID, paymentID string) (*payment.Payment, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.payments[paymentID]
	if !ok || e.p.SessionID != sessionID {
		return nil, payment.ErrPaymentNotFound
	}
	if e.p.Status.Terminal() {
		return nil, fmt.Errorf("%w: %s", payment.ErrPaymentSettled, e.p.Status)
	}

	e.complete.Cancel()
	e.expire.Cancel()
	now := uc.now().UTC()
	e.p.Status = payment.StatusCancelled
	e.p.SettledAt = &now
	uc.forgetLater(paymentID)

	uc.logger.Info("Payment cancelled", zap.String("payment_id", paymentID))
	p := e.p
	return &p, nil
}

// settle is the timer callback. The first transition out of pending wins.
func (uc *paymentUseCase) settle(id string, status payment.Status) {
	uc.mu.Lock()
	e, ok := uc.payments[id]
	if !ok || e.p.Status.Terminal() {
		uc.mu.Unlock()
		return
	}

	now := uc.now().UTC()
	e.p.Status = status
	e.p.SettledAt = &now
	if status == payment.StatusCompleted {
		e.expire.Cancel()
		e.p.OrderNumber = uc.nextOrderNumber(now)
	} else {
		e.complete.Cancel()
	}
	uc.forgetLater(id)
	p := e.p
	uc.mu.Unlock()

	if status != payment.StatusCompleted {
		uc.logger.Warn("Payment deadline passed", zap.String("payment_id", id))
		return
	}

	uc.logger.Info("Payment completed", zap.String("payment_id", id), zap.String("order_number", p.OrderNumber))
	uc.placeOrder(p)
}

func (uc *paymentUseCase) placeOrder(p payment.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	event := order.NewOrderPlaced(p.OrderNumber, p.SessionID, p.Quote, *p.SettledAt)
	if err := uc.publisher.PublishOrderPlaced(ctx, event); err != nil {
		uc.logger.Error("Failed to publish order event", zap.String("order_number", p.OrderNumber), zap.Error(err))
	}

	paid := make([]cart.Item, 0, len(p.Quote.Lines))
	for _, l := range p.Quote.Lines {
		paid = append(paid, cart.Item{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	if _, err := uc.cart.Deduct(ctx, p.SessionID, paid); err != nil {
		uc.logger.Error("Failed to remove paid items from cart", zap.String("session_id", p.SessionID), zap.Error(err))
	}
}

// forgetLater drops a settled payment once the retention period has passed. Caller holds mu.
func (uc *paymentUseCase) forgetLater(id string) {
	if uc.opts.Retention <= 0 {
		return
	}
	uc.sched.Schedule(uc.opts.Retention, func() {
		uc.mu.Lock()
		delete(uc.payments, id)
		uc.mu.Unlock()
	})
}

// nextOrderNumber yields CE<yyyymmdd><nnn>, restarting the sequence each day. Caller holds mu.
func (uc *paymentUseCase) nextOrderNumber(now time.Time) string {
	day := now.Format("20060102")
	if day != uc.seqDay {
		uc.seqDay = day
		uc.seq = 0
	}
	uc.seq++
	return fmt.Sprintf("CE%s%03d", day, uc.seq)
}
