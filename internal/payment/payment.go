package payment

import (
	"errors"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentSettled  = errors.New("payment already settled")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Terminal() bool {
	return s != StatusPending
}

type Payment struct {
	ID          string
	SessionID   string
	Status      Status
	Quote       pricing.Quote
	OrderNumber string // set on completion
	CreatedAt   time.Time
	ExpiresAt   time.Time
	SettledAt   *time.Time
}

// TimeLeft is the time until the deadline, zero once settled or past it.
func (p *Payment) TimeLeft(now time.Time) time.Duration {
	if p.Status.Terminal() {
		return 0
	}
	left := p.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
