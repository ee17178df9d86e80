package session

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// DirectorySource returns the whole user directory.
type DirectorySource interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
}

// Cache is a string key/value store. Load reports an absent key with
// store.ErrCacheMiss.
type Cache interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
