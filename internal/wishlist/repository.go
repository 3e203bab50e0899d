package wishlist

import "context"

type Repository interface {
	// Load returns an empty set for missing or corrupt data. An error means the store
	// could not be read and the persisted set is unknown.
	Load(ctx context.Context, sessionID string) (Set, error)
	Save(ctx context.Context, sessionID string, s Set) error
}
