package dialog

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the Variant B routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/dialog", func(r chi.Router) {
		r.Post("/start", h.Start)
		r.Post("/message", h.Message)
		r.Post("/save", h.Save)
	})
}
