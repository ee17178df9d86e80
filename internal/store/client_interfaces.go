package store

import "context"

// Cache is a string key/value store used by the client session.
//
// Load returns ErrCacheMiss when key is absent. Delete of an absent key is
// not an error.
type Cache interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
