package generation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/momorit/mein-formularprojekt/internal/catalog"
	"github.com/momorit/mein-formularprojekt/internal/config"
	"github.com/momorit/mein-formularprojekt/internal/entity"
	pkghttp "github.com/momorit/mein-formularprojekt/pkg/http"
)

// OllamaProvider is the secondary, locally hosted provider.
type OllamaProvider struct {
	connector *pkghttp.Connector
	model     string
}

func NewOllamaProvider(cfg config.OllamaConfig) *OllamaProvider {
	return &OllamaProvider{
		connector: pkghttp.NewConnector(
			&pkghttp.ConnectorConfig{BaseURL: cfg.BaseURL},
			pkghttp.WithRequestTimeout(cfg.Timeout),
			pkghttp.WithRequestLogging(),
		),
		model: cfg.Model,
	}
}

func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (p *OllamaProvider) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	system := catalog.SystemPromptChat
	if req.DialogMode {
		system = catalog.SystemPromptDialog
	}

	user := req.Prompt
	if req.Context != "" {
		user = fmt.Sprintf("Kontext: %s\n\nAufgabe: %s", req.Context, req.Prompt)
	}

	var resp ollamaChatResponse
	err := p.connector.DoRequest(ctx, http.MethodPost, "/api/chat", &ollamaChatRequest{
		Model: p.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("ollama chat: %w", err)
	}

	if resp.Message.Content == "" {
		return nil, entity.ErrEmptyResponse
	}

	return &entity.GenerationResult{
		Text:   resp.Message.Content,
		Source: entity.SourceOllama,
	}, nil
}

// Ping reports whether the Ollama service answers its tags endpoint.
// Used by the health handler only.
func (p *OllamaProvider) Ping(ctx context.Context) bool {
	err := p.connector.DoRequest(ctx, http.MethodGet, "/api/tags", nil, nil)
	return err == nil
}
