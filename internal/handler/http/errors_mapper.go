package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidProductID:         http.StatusBadRequest,
	service.ErrInvalidProductID: http.StatusBadRequest,
	service.ErrProductNotFound:  http.StatusNotFound,
	store.ErrProductNotFound:    http.StatusNotFound,

	store.ErrDirectoryNotMigrated: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
