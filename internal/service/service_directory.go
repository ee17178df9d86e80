package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type directoryService struct {
	repo   store.DirectoryRepository
	logger *logger.Logger
}

func NewDirectoryService(repo store.DirectoryRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{repo: repo, logger: logger}
}

// ListUsers returns the whole directory, credentials included. The endpoint
// it backs is open.
func (s *directoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*directoryService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrDirectoryFailure, err)
	}
	if users == nil {
		users = []models.User{}
	}

	log.Debug().Str("func", "*directoryService.ListUsers").Int("count", len(users)).Msg("users listed")
	return users, nil
}
