package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", h.storeName)
	b.WriteString("Sign in with the terminal client to browse the catalog.\n\n")
	b.WriteString("Public routes:\n")
	for _, route := range []string{
		"GET " + h.landingPath,
		"GET " + usersPath,
		"GET " + productsPath,
		"GET " + productsPath + "/{id}",
		"GET " + versionPath,
	} {
		fmt.Fprintf(&b, "  %s\n", route)
	}

	if _, err := utils.WriteText(w, b.String(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.landing").Msg("error writing response")
	}
}
