package service

import (
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

type Services struct {
	DirectoryService DirectoryService
	CatalogService   CatalogService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DirectoryService: NewDirectoryService(storages.DirectoryRepository, logger),
		CatalogService:   NewCatalogService(storages.CatalogRepository, logger, NewCatalogValidationService()),
		AppInfoService:   appInfo,
	}, nil
}
