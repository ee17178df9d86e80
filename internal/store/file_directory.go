package store

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// fileRepository serves the directory and the catalog from JSON documents
// loaded once at construction.
type fileRepository struct {
	users    []models.User
	products []models.Product
	logger   *logger.Logger
}

// NewFileRepository reads the user directory and product catalog from the
// given paths. An empty path selects the matching fallback document.
func NewFileRepository(usersPath, productsPath string, usersFallback, productsFallback []byte, log *logger.Logger) (Repository, error) {
	usersRaw, err := readDataFile(usersPath, usersFallback)
	if err != nil {
		log.Err(err).Str("func", "NewFileRepository").Str("path", usersPath).Msg("error reading users file")
		return nil, err
	}
	productsRaw, err := readDataFile(productsPath, productsFallback)
	if err != nil {
		log.Err(err).Str("func", "NewFileRepository").Str("path", productsPath).Msg("error reading products file")
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(usersRaw, &users); err != nil {
		log.Err(err).Str("func", "NewFileRepository").Msg("error decoding users file")
		return nil, fmt.Errorf("%w: users: %w", ErrDecodingDataFile, err)
	}
	var products []models.Product
	if err = json.Unmarshal(productsRaw, &products); err != nil {
		log.Err(err).Str("func", "NewFileRepository").Msg("error decoding products file")
		return nil, fmt.Errorf("%w: products: %w", ErrDecodingDataFile, err)
	}

	slices.SortStableFunc(users, func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(products, func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) })

	log.Debug().Str("func", "NewFileRepository").
		Int("users", len(users)).
		Int("products", len(products)).
		Msg("data files loaded")

	return &fileRepository{users: users, products: products, logger: log}, nil
}

func readDataFile(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDataFile, err)
	}
	return raw, nil
}

func (f *fileRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.users), nil
}

func (f *fileRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.products), nil
}

func (f *fileRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	if err := ctx.Err(); err != nil {
		return models.Product{}, err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
