package tui

//go:generate mockgen -source=interfaces.go -destination=../mock/tui_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// SessionManager is the part of the session store the pages use.
type SessionManager interface {
	Login(ctx context.Context, credentials models.Credentials) error
	Logout(ctx context.Context)
	IsAuthenticated() bool
	CurrentUser() (models.User, bool)
}

// CatalogSource loads products from the server.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	FetchProduct(ctx context.Context, id int64) (models.Product, error)
}
