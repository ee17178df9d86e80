package http

import (
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
)

type Handler struct {
	services *service.Services

	storeName      string
	landingPath    string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	landingPath := cfg.Session.LandingPath
	if landingPath == "" {
		landingPath = config.DefaultLandingPath
	}

	return &Handler{
		services:       services,
		storeName:      cfg.App.StoreName,
		landingPath:    landingPath,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
