package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CatalogServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// DirectoryService serves the open user directory.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CatalogService serves the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CatalogServiceWrapper decorates a CatalogService with extra behaviour
// such as validation.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService
}
