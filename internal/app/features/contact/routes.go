package contact

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the contact route to r, which is expected to be the /api
// route group.
func Register(r chi.Router, h *Handler) {
	r.Post("/contact", h.Submit)
}
