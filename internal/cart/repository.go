package cart

import "context"

// Repository keeps one ledger per shopping session.
type Repository interface {
	Get(ctx context.Context, sessionID string) (Ledger, error)
	// Update applies fn to the session's ledger and stores the result atomically.
	Update(ctx context.Context, sessionID string, fn func(Ledger) Ledger) (Ledger, error)
	Delete(ctx context.Context, sessionID string) error
}
