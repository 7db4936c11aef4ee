package generation

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/momorit/mein-formularprojekt/internal/catalog"
	"github.com/momorit/mein-formularprojekt/internal/config"
	"github.com/momorit/mein-formularprojekt/internal/entity"
)

// GroqProvider is the primary hosted provider. Groq exposes an
// OpenAI-compatible chat-completions API, so the OpenAI SDK is pointed at
// its base URL.
type GroqProvider struct {
	client openai.Client
	model  string
}

func NewGroqProvider(cfg config.GroqConfig) *GroqProvider {
	return &GroqProvider{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithRequestTimeout(cfg.Timeout),
			option.WithMaxRetries(0),
		),
		model: cfg.Model,
	}
}

func (p *GroqProvider) Name() string { return "groq" }

func (p *GroqProvider) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	system := catalog.SystemPromptChat
	temperature := 0.7
	maxTokens := int64(2048)
	if req.DialogMode {
		system = catalog.SystemPromptDialog
		temperature = 0.3
		maxTokens = 1024
	}

	user := req.Prompt
	if req.Context != "" {
		user = fmt.Sprintf("Kontext: %s\n\nAufgabe: %s", req.Context, req.Prompt)
	}

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("groq chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, entity.ErrEmptyResponse
	}

	return &entity.GenerationResult{
		Text:   completion.Choices[0].Message.Content,
		Source: entity.SourceGroq,
	}, nil
}
