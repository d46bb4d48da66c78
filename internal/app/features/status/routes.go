package status

import (
	"github.com/go-chi/chi/v5"
)

// Register attaches the JSON status route to r, which is expected to be the
// /api route group.
func Register(r chi.Router, h *Handler) {
	r.Get("/status", h.Snapshot)
}

// RegisterRoot attaches the human-facing routes directly on the root router:
// the HTML status page, the liveness probe, and the HTML 404 handler.
func RegisterRoot(r chi.Router, h *Handler) {
	r.Get("/", h.Home)
	r.Get("/test", h.Liveness)
	r.NotFound(h.NotFound)
}
