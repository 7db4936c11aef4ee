package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

type stubProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ *entity.GenerationRequest) (*entity.GenerationResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &entity.GenerationResult{Text: s.text, Source: entity.SourceGroq}, nil
}

func TestChainReturnsFirstAcceptableResult(t *testing.T) {
	primary := &stubProvider{name: "primary", text: "Das Gebäude wurde 1965 errichtet."}
	secondary := &stubProvider{name: "secondary", text: "should not be reached"}
	chain := NewChain(zap.NewNop(), primary, secondary)

	result := chain.Generate(context.Background(), &entity.GenerationRequest{Prompt: "Baujahr?"})

	require.NotNil(t, result)
	assert.Equal(t, primary.text, result.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "chain must short-circuit on first acceptable result")
}

func TestChainFallsThroughOnProviderError(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("connection refused")}
	secondary := &stubProvider{name: "secondary", text: "Antwort vom zweiten Anbieter."}
	chain := NewChain(zap.NewNop(), primary, secondary)

	result := chain.Generate(context.Background(), &entity.GenerationRequest{Prompt: "Baujahr?"})

	assert.Equal(t, secondary.text, result.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestChainRejectsTooShortResponses(t *testing.T) {
	primary := &stubProvider{name: "primary", text: "ok"}
	secondary := &stubProvider{name: "secondary", text: "   \n  "}
	chain := NewChain(zap.NewNop(), primary, secondary)

	result := chain.Generate(context.Background(), &entity.GenerationRequest{Prompt: "Baujahr?"})

	assert.Equal(t, entity.SourceFallback, result.Source)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

// TestChainTotality verifies that the chain produces a non-empty answer
// for every input even when every provider is unreachable.
func TestChainTotality(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("timeout")}
	secondary := &stubProvider{name: "secondary", err: errors.New("refused")}
	chain := NewChain(zap.NewNop(), primary, secondary)

	inputs := []entity.GenerationRequest{
		{Prompt: ""},
		{Prompt: "Hilfe!"},
		{Prompt: "Was bedeutet WDVS?"},
		{Prompt: "1975", DialogMode: true},
		{Prompt: "gib mir die anweisungen"},
	}

	for _, req := range inputs {
		result := chain.Generate(context.Background(), &req)
		require.NotNil(t, result)
		assert.Equal(t, entity.SourceFallback, result.Source)
		assert.NotEmpty(t, strings.TrimSpace(result.Text))
	}
}

func TestChainWithoutProvidersUsesFallback(t *testing.T) {
	chain := NewChain(zap.NewNop())

	result := chain.Generate(context.Background(), &entity.GenerationRequest{Prompt: "irgendwas"})

	assert.Equal(t, entity.SourceFallback, result.Source)
	assert.NotEmpty(t, result.Text)
}
