package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/models"
)

func validProduct() models.Product {
	return models.Product{ID: 1, Name: "Cold Brew", Price: 3.5, VolumeML: 330}
}

func TestCatalogValidator_ProductID(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, ProductID(1)))
	assert.ErrorIs(t, v.Validate(ctx, ProductID(0)), ErrInvalidProductID)
	assert.ErrorIs(t, v.Validate(ctx, ProductID(-5)), ErrInvalidProductID)
}

func TestCatalogValidator_Product(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Product)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Product) {}},
		{name: "zero id", mutate: func(p *models.Product) { p.ID = 0 }, wantErr: ErrInvalidProductID},
		{name: "empty name", mutate: func(p *models.Product) { p.Name = "" }, wantErr: ErrEmptyProductName},
		{name: "negative price", mutate: func(p *models.Product) { p.Price = -1 }, wantErr: ErrNegativePrice},
		{name: "negative volume", mutate: func(p *models.Product) { p.VolumeML = -1 }, wantErr: ErrNegativeVolume},
		{
			name:   "scoped to name ignores id",
			mutate: func(p *models.Product) { p.ID = 0 },
			fields: []string{FieldName},
		},
		{
			name:    "unknown field",
			mutate:  func(*models.Product) {},
			fields:  []string{"colour"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewCatalogValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogValidator_PointerAndUnsupported(t *testing.T) {
	v := NewCatalogValidator()
	p := validProduct()

	assert.NoError(t, v.Validate(context.Background(), &p))
	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrUnsupportedType)
}
