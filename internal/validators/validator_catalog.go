package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/models"
)

const (
	FieldID     = "id"
	FieldName   = "name"
	FieldPrice  = "price"
	FieldVolume = "volume_ml"
)

var allProductFields = []string{FieldID, FieldName, FieldPrice, FieldVolume}

// ProductID is a catalog identifier taken from a request.
type ProductID int64

type CatalogValidator struct{}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate accepts a [ProductID] or a [models.Product]. For a product, fields
// limits the checks; no fields means all of them.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case ProductID:
		return validateProductID(int64(value))
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateProduct(_ context.Context, p models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = allProductFields
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if err := validateProductID(p.ID); err != nil {
				return err
			}
		case FieldName:
			if p.Name == "" {
				return ErrEmptyProductName
			}
		case FieldPrice:
			if p.Price < 0 {
				return ErrNegativePrice
			}
		case FieldVolume:
			if p.VolumeML < 0 {
				return ErrNegativeVolume
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateProductID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProductID, id)
	}
	return nil
}
