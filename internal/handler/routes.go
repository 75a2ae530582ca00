package handler

import (
	"github.com/go-chi/chi/v5"

	"inkwell/internal/middleware"
)

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	// Stored images, publicly retrievable by filename
	r.Get("/images/{filename}", h.ServeImage)

	// Public read API
	r.Route("/api", func(r chi.Router) {
		r.Get("/posts", h.ListPublishedPosts)
		r.Get("/posts/{slug}", h.GetPublishedPost)

		r.Route("/admin", func(r chi.Router) {
			loginLimiter := middleware.NewRateLimiter(10)
			r.With(loginLimiter.Middleware()).Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(h.db))

				r.Post("/logout", h.Logout)
				r.Get("/stats", h.AdminStats)

				r.Get("/posts", h.AdminListPosts)
				r.Post("/posts", h.AdminCreatePost)
				r.Get("/posts/{id}", h.AdminGetPost)
				r.Put("/posts/{id}", h.AdminUpdatePost)
				r.Delete("/posts/{id}", h.AdminDeletePost)
				r.Post("/posts/{id}/publish", h.AdminPublishPost)
				r.Post("/posts/{id}/unpublish", h.AdminUnpublishPost)

				r.Post("/images", h.AdminUploadImage)
				r.Get("/images", h.AdminListImages)
				r.Delete("/images/{filename}", h.AdminDeleteImage)
			})
		})
	})
}
