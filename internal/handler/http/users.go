package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

// listUsers serves the whole directory, passphrases included.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.DirectoryService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error writing response")
	}
}
