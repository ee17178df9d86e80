package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

const apiPrefix = "/api/"

// withRequestFilter logs every request that is not a public route. It never
// blocks a request and never reads credentials or cookies; authorization is
// left to the client.
func (h *Handler) withRequestFilter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		path := r.URL.Path

		if path == h.landingPath || path == usersPath {
			log.Debug().Str("path", path).Msg("public route")
			next.ServeHTTP(w, r)
			return
		}

		log.Info().Str("path", path).Msg("server-side check")
		if strings.HasPrefix(path, apiPrefix) {
			log.Info().Str("path", path).Msg("api request allowed")
		}

		next.ServeHTTP(w, r)
	})
}
