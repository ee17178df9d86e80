package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

// CatalogValidationService rejects malformed ids before they reach the
// repository.
type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{validator: validators.NewCatalogValidator()}
}

func (v *CatalogValidationService) Wrap(inner CatalogService) CatalogService {
	return &CatalogValidationService{inner: inner, validator: v.validator}
}

func (v *CatalogValidationService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return v.inner.ListProducts(ctx)
}

func (v *CatalogValidationService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	if err := v.validator.Validate(ctx, validators.ProductID(id)); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidProductID, err)
	}
	return v.inner.GetProduct(ctx, id)
}
