package api

import (
	"context"
	"net/http"
	"time"

	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/pkg/response"
)

const version = "2.0.0"

// HealthStatus reports which backing services are reachable. All checks
// are best-effort; the endpoint itself always answers 200.
type HealthStatus struct {
	GroqConfigured  bool
	OllamaPing      func(ctx context.Context) bool // nil when Ollama is disabled
	DriveConfigured bool
}

// HealthHandler handles GET /health
func HealthHandler(status HealthStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := map[string]string{
			"groq":    availability(status.GroqConfigured),
			"storage": storageMode(status.DriveConfigured),
		}

		if status.OllamaPing != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			services["llm_ollama"] = onlineState(status.OllamaPing(ctx))
		} else {
			services["llm_ollama"] = "offline"
		}

		response.Success(w, &entity.HealthResponse{
			Status:    "healthy",
			Services:  services,
			Timestamp: time.Now().Format(time.RFC3339),
			Version:   version,
		})
	}
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}

func onlineState(ok bool) string {
	if ok {
		return "online"
	}
	return "offline"
}

func storageMode(remote bool) string {
	if remote {
		return "local+google_drive"
	}
	return "local"
}
