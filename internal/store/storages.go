package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/data"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
)

// Storages groups the server data sources.
type Storages struct {
	DirectoryRepository DirectoryRepository
	CatalogRepository   CatalogRepository

	db *DB
}

// NewStorages selects PostgreSQL when a DSN is configured and the JSON data
// files otherwise.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		repo := NewSQLRepository(db, log)
		log.Info().Str("func", "NewStorages").Msg("serving directory from postgres")
		return &Storages{DirectoryRepository: repo, CatalogRepository: repo, db: db}, nil
	}

	repo, err := NewFileRepository(cfg.Files.UsersFile, cfg.Files.ProductsFile, data.Users, data.Products, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Msg("serving directory from data files")
	return &Storages{DirectoryRepository: repo, CatalogRepository: repo}, nil
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	return s.db.Close()
}
