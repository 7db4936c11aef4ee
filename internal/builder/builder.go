package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/api"
	dialogapi "github.com/momorit/mein-formularprojekt/internal/api/dialog"
	formapi "github.com/momorit/mein-formularprojekt/internal/api/form"
	studyapi "github.com/momorit/mein-formularprojekt/internal/api/study"
	"github.com/momorit/mein-formularprojekt/internal/config"
	"github.com/momorit/mein-formularprojekt/internal/generation"
	"github.com/momorit/mein-formularprojekt/internal/pkg/validator"
	"github.com/momorit/mein-formularprojekt/internal/session"
	"github.com/momorit/mein-formularprojekt/internal/storage"
	dialoguc "github.com/momorit/mein-formularprojekt/internal/usecase/dialog"
	formuc "github.com/momorit/mein-formularprojekt/internal/usecase/form"
	studyuc "github.com/momorit/mein-formularprojekt/internal/usecase/study"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Generation chain: providers in priority order, canned terminal step
	var providers []generation.TextGenerator
	var ollamaProvider *generation.OllamaProvider

	if cfg.GroqCfg.APIKey != "" {
		providers = append(providers, generation.NewGroqProvider(cfg.GroqCfg))
		logger.Info("Groq provider configured", zap.String("model", cfg.GroqCfg.Model))
	} else {
		logger.Info("No Groq API key set, skipping hosted provider")
	}

	if cfg.OllamaCfg.Enabled {
		ollamaProvider = generation.NewOllamaProvider(cfg.OllamaCfg)
		providers = append(providers, ollamaProvider)
		logger.Info("Ollama provider configured",
			zap.String("base_url", cfg.OllamaCfg.BaseURL),
			zap.String("model", cfg.OllamaCfg.Model),
		)
	}

	chain := generation.NewChain(logger, providers...)

	// Storage: remote upload when credentials exist, local write always
	var remote storage.RemoteStore
	if cfg.DriveCfg.Configured() {
		drive, err := storage.NewDriveStore(ctx, cfg.DriveCfg)
		if err != nil {
			logger.Warn("Google Drive unavailable, running with local storage only", zap.Error(err))
		} else {
			remote = drive
			logger.Info("Google Drive storage configured", zap.String("folder", cfg.DriveCfg.FolderName))
		}
	}

	store := storage.NewDualStore(storage.NewLocalStore(cfg.OutputDir), remote)
	sessions := session.NewStore(cfg.SessionTTL)
	logger.Info("Stores initialized",
		zap.String("output_dir", cfg.OutputDir),
		zap.Duration("session_ttl", cfg.SessionTTL),
	)

	// Initialize use cases
	formUC := formuc.NewUsecase(chain, store)
	dialogUC := dialoguc.NewUsecase(chain, store, sessions)
	studyUC := studyuc.NewUsecase(store)

	// Setup API handlers
	v := validator.New()
	formHandler := formapi.NewHandler(formUC, v)
	dialogHandler := dialogapi.NewHandler(dialogUC, v)
	studyHandler := studyapi.NewHandler(studyUC, v)
	logger.Info("API handlers initialized")

	health := api.HealthStatus{
		GroqConfigured:  cfg.GroqCfg.APIKey != "",
		DriveConfigured: remote != nil,
	}
	if ollamaProvider != nil {
		health.OllamaPing = ollamaProvider.Ping
	}

	// Setup router
	router := api.SetupRouter(formHandler, dialogHandler, studyHandler, api.RouterConfig{
		AllowOrigins: api.AllowedOrigins(cfg.IsProduction()),
		ExposeDocs:   !cfg.IsProduction(),
		Health:       health,
	}, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
