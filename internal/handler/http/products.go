package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// listProducts serves the catalog. A failing catalog is logged and served
// as an empty list.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.CatalogService.ListProducts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProducts").Msg("error listing products")
		products = []models.Product{}
	}

	if _, err = utils.WriteJSON(w, products, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listProducts").Msg("error writing response")
	}
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Debug().Str("func", "*Handler.getProduct").Str("id", rawID).Msg("non-numeric product id")
		http.Error(w, ErrInvalidProductID.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.services.CatalogService.GetProduct(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProduct").Int64("id", id).Msg("error getting product")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, product, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getProduct").Msg("error writing response")
	}
}
