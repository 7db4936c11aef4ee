package generation

import (
	"context"
	"strings"

	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// minAcceptableLength guards against empty or garbage provider output.
// Anything shorter falls through to the next provider.
const minAcceptableLength = 10

// Chain tries each provider once, in order, and accepts the first result
// that clears the length threshold. The terminal Fallback provider makes
// Generate total: it never returns an error.
type Chain struct {
	providers []TextGenerator
	fallback  *Fallback
	logger    *zap.Logger
}

func NewChain(logger *zap.Logger, providers ...TextGenerator) *Chain {
	return &Chain{
		providers: providers,
		fallback:  NewFallback(),
		logger:    logger,
	}
}

// Generate runs the fallback chain. The returned result is never nil and
// its text is never empty.
func (c *Chain) Generate(ctx context.Context, req *entity.GenerationRequest) *entity.GenerationResult {
	for _, p := range c.providers {
		result, err := p.Generate(ctx, req)
		if err != nil {
			ctxzap.Warn(ctx, "provider failed, falling through",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}

		if len(strings.TrimSpace(result.Text)) < minAcceptableLength {
			ctxzap.Warn(ctx, "provider response below acceptance threshold",
				zap.String("provider", p.Name()),
				zap.Int("length", len(result.Text)),
			)
			continue
		}

		ctxzap.Info(ctx, "generation succeeded",
			zap.String("provider", p.Name()),
			zap.Int("length", len(result.Text)),
		)
		return result
	}

	result, _ := c.fallback.Generate(ctx, req)
	ctxzap.Info(ctx, "all providers exhausted, using canned response")
	return result
}
