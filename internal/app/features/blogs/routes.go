package blogs

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the blog routes to r, which is expected to be the /api
// route group.
func Register(r chi.Router, h *Handler) {
	r.Get("/blogs", h.List)
	r.Route("/blog", func(r chi.Router) {
		r.Post("/new", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
