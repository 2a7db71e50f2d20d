package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		withRequestMeta,
	)

	router.Handle("/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/version", h.getServerVersion)
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/generator", h.generate)
			r.Post("/strength", h.strength)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)
			r.Post("/auth/change-password", h.changePassword)
			r.Delete("/auth/delete-account", h.deleteAccount)

			r.Route("/vault", func(r chi.Router) {
				r.Get("/", h.listItems)
				r.Post("/", h.createItem)
				r.Get("/{id}", h.getItem)
				r.Put("/{id}", h.updateItem)
				r.Delete("/{id}", h.deleteItem)
			})

			r.Get("/categories", h.listCategories)
			r.Post("/categories", h.createCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/activity", h.listActivity)

			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)
			r.Put("/settings/avatar", h.updateAvatar)

			r.Get("/security", h.securityReport)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
