package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type catalogService struct {
	repo   store.CatalogRepository
	logger *logger.Logger
}

// NewCatalogService returns a CatalogService over repo, decorated by
// wrappers in order.
func NewCatalogService(repo store.CatalogRepository, logger *logger.Logger, wrappers ...CatalogServiceWrapper) CatalogService {
	var svc CatalogService = &catalogService{repo: repo, logger: logger}
	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}
	return svc
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*catalogService.ListProducts").Msg("error listing products")
		return nil, fmt.Errorf("%w: %w", ErrCatalogFailure, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := s.repo.GetProduct(ctx, id)
	if errors.Is(err, store.ErrProductNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogService.GetProduct").Int64("id", id).Msg("error getting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrCatalogFailure, err)
	}
	return product, nil
}
