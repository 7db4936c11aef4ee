package generation

import (
	"context"
	"strings"

	"github.com/momorit/mein-formularprojekt/internal/catalog"
	"github.com/momorit/mein-formularprojekt/internal/entity"
)

// Fallback is the terminal chain step: a deterministic, intent-keyed
// canned responder. It never fails and never blocks.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Name() string { return "canned" }

func (f *Fallback) Generate(_ context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	return &entity.GenerationResult{
		Text:   f.respond(req),
		Source: entity.SourceFallback,
	}, nil
}

func (f *Fallback) respond(req *entity.GenerationRequest) string {
	prompt := strings.ToLower(strings.TrimSpace(req.Prompt))

	switch {
	case strings.Contains(prompt, "hilfe") || strings.Contains(prompt, "help"):
		return catalog.CannedHelp
	case strings.Contains(prompt, "anweisungen") || strings.Contains(prompt, "instructions"):
		return catalog.CannedInstructions
	case strings.HasSuffix(prompt, "?"):
		return catalog.CannedQuestion
	case req.DialogMode:
		return catalog.CannedDialogAck
	default:
		return catalog.CannedGeneral
	}
}
