package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	usersPath    = "/api/users"
	productsPath = "/api/products"
	versionPath  = "/api/version/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, h.withRequestFilter, h.withGZip)

	// every route is public; the request filter only logs
	router.Get(h.landingPath, h.landing)
	router.Get(usersPath, h.listUsers)
	router.Get(productsPath, h.listProducts)
	router.Get(productsPath+"/{id}", h.getProduct)
	router.Get(versionPath, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
