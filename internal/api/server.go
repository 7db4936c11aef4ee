package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	dialogapi "github.com/momorit/mein-formularprojekt/internal/api/dialog"
	"github.com/momorit/mein-formularprojekt/internal/api/docs"
	formapi "github.com/momorit/mein-formularprojekt/internal/api/form"
	"github.com/momorit/mein-formularprojekt/internal/api/middleware"
	studyapi "github.com/momorit/mein-formularprojekt/internal/api/study"
)

// RouterConfig carries the environment-dependent router settings.
type RouterConfig struct {
	AllowOrigins []string
	ExposeDocs   bool
	Health       HealthStatus
}

// AllowedOrigins returns the CORS allow-list for an environment.
func AllowedOrigins(production bool) []string {
	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"https://*.vercel.app",
		"https://*.netlify.app",
		"https://*.railway.app",
	}
	if !production {
		origins = append(origins, "*")
	}
	return origins
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	formHandler *formapi.Handler,
	dialogHandler *dialogapi.Handler,
	studyHandler *studyapi.Handler,
	cfg RouterConfig,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS(cfg.AllowOrigins))       // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", HealthHandler(cfg.Health))

	// Swagger documentation endpoints, hidden in production
	if cfg.ExposeDocs {
		docs.RegisterRoutes(r)
	}

	// Register routes
	formapi.RegisterRoutes(r, formHandler)
	dialogapi.RegisterRoutes(r, dialogHandler)
	studyapi.RegisterRoutes(r, studyHandler)

	return r
}
