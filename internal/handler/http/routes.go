package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)
	router.Use(middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.gate)

	// public unless the excluded paths say otherwise
	router.Get("/", h.index)
	router.Get("/api/v1/status", h.status)
	router.Get("/api/v1/unauthorized", h.unauthorized)
	router.Get("/api/v1/forbidden", h.forbidden)

	router.Post("/api/v1/users", h.register)
	router.Get("/api/v1/users/me", h.me)

	router.Post("/api/v1/sessions", h.login)
	router.Delete("/api/v1/sessions", h.logout)
	router.Get("/api/v1/profile", h.profile)

	router.Post("/api/v1/reset_password", h.issueResetToken)
	router.Put("/api/v1/reset_password", h.updatePassword)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
