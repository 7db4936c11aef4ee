package config

import (
	"encoding/base64"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8000"`

	// Environment toggles docs exposure and the CORS allow-list
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Local storage configuration
	OutputDir string `env:"OUTPUT_DIR" envDefault:"LLM Output"`

	// Dialog session lifetime; sessions are evicted after this TTL
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// Provider configurations
	GroqCfg   GroqConfig   `envPrefix:"GROQ_"`
	OllamaCfg OllamaConfig `envPrefix:"OLLAMA_"`
	DriveCfg  DriveConfig  `envPrefix:"GOOGLE_DRIVE_"`
}

// GroqConfig holds the hosted LLM provider configuration. The provider is
// part of the generation chain only when APIKey is set.
type GroqConfig struct {
	APIKey  string        `env:"API_KEY"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model   string        `env:"MODEL" envDefault:"llama3-8b-8192"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// OllamaConfig holds the locally hosted LLM provider configuration. The
// provider is part of the generation chain only when Enabled is true.
type OllamaConfig struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:11434"`
	Model   string        `env:"MODEL" envDefault:"qwen2.5:7b"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// DriveConfig holds the remote object-store configuration. Remote
// persistence is attempted only when credentials are configured.
type DriveConfig struct {
	// Service-account credentials JSON, raw or base64-encoded
	Credentials       string        `env:"CREDENTIALS"`
	CredentialsBase64 string        `env:"CREDENTIALS_BASE64"`
	FolderName        string        `env:"FOLDER_NAME" envDefault:"FormularIQ Ergebnisse"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// Endpoint overrides, used by tests to point at a fake Drive API
	APIBaseURL    string `env:"API_BASE_URL" envDefault:"https://www.googleapis.com/drive/v3"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"https://www.googleapis.com/upload/drive/v3"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1 minute, got %s", cfg.SessionTTL)
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	switch cfg.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", cfg.Environment)
	}
	return nil
}

// IsProduction reports whether the production origin allow-list applies
// and the docs endpoint is hidden.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CredentialsJSON returns the service-account credentials, decoding the
// base64 form when that is the one configured.
func (d *DriveConfig) CredentialsJSON() ([]byte, error) {
	if d.Credentials != "" {
		return []byte(d.Credentials), nil
	}
	if d.CredentialsBase64 != "" {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(d.CredentialsBase64))
		if err != nil {
			return nil, fmt.Errorf("decode base64 credentials: %w", err)
		}
		return raw, nil
	}
	return nil, nil
}

// Configured reports whether remote storage credentials are present.
func (d *DriveConfig) Configured() bool {
	return d.Credentials != "" || d.CredentialsBase64 != ""
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
