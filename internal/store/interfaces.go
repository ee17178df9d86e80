package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// DirectoryRepository is the source of the user directory.
// ListUsers returns every record ordered by id.
type DirectoryRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CatalogRepository is the source of the product catalog.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	// GetProduct returns ErrProductNotFound when id is unknown.
	GetProduct(ctx context.Context, id int64) (models.Product, error)
}

// Repository serves both the directory and the catalog from one backend.
type Repository interface {
	DirectoryRepository
	CatalogRepository
}
