package form

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the Variant A routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/generate-instructions", h.GenerateInstructions)
	r.Post("/api/chat", h.Chat)
	r.Post("/api/save", h.Save)
}
