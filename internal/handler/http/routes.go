package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pzawadzki/filmoteka-auth/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
	})

	// routes behind the access guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user_details", h.userDetails)
		r.Get("/protected_resource", h.protectedResource)

		r.Group(func(ar chi.Router) {
			ar.Use(h.requireRole(models.RoleAdmin))
			ar.Post("/users", h.createUser)
		})
	})

	return router
}
