package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// documentation and service info
	router.Get(openAPIPath, h.openAPISpec)
	router.Get("/customer/docs/*", httpSwagger.Handler(
		httpSwagger.URL(openAPIPath),
	))
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		if h.checkIntegrity {
			r.Use(h.withIntegrityCheck)
		}

		// routes without authorization
		r.Post("/customer/login", h.login)
		r.Post("/customer/register", h.register)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/customer/getInfo", h.getInfo)
			r.Get("/customer/getPackages", h.getPackages)
			r.Put("/customer/updatePassword", h.updatePassword)
			r.Put("/customer/updateProfile", h.updateProfile)
			r.Delete("/customer/deleteProfile", h.deleteProfile)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
