// Package kvstore provides the durable string key-value storage used for wishlists.
package kvstore

import "context"

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
