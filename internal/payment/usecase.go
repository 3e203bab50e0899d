package payment

import "context"

type UseCase interface {
	StartPayment(ctx context.Context, sessionID, promoCode string) (*Payment, error)
	GetPayment(ctx context.Context, sessionID, paymentID string) (*Payment, error)
	CancelPayment(ctx context.Context, sessionID, paymentID string) (*Payment, error)
}
