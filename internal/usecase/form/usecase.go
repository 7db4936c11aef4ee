// Package form implements the Variant A flow: the static field catalog
// with optional LLM-phrased instructions, the chat assistant and the
// form save.
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/catalog"
	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/generation"
	"github.com/momorit/mein-formularprojekt/internal/storage"
)

type Usecase struct {
	chain *generation.Chain
	store *storage.DualStore
}

func NewUsecase(chain *generation.Chain, store *storage.DualStore) *Usecase {
	return &Usecase{
		chain: chain,
		store: store,
	}
}

// GenerateInstructions returns the form catalog, with field instructions
// rephrased by the generation chain when a context is supplied. Any
// failure to obtain or parse regenerated instructions falls back to the
// static catalog unconditionally.
func (u *Usecase) GenerateInstructions(ctx context.Context, formContext string) *entity.GenerateInstructionsResponse {
	fields := catalog.FormFields()

	if formContext != "" {
		if hints, ok := u.regenerateHints(ctx, formContext, len(fields)); ok {
			for i := range fields {
				fields[i].Hint = hints[i]
			}
		}
	}

	instructions := make([]string, 0, len(fields))
	for _, f := range fields {
		instructions = append(instructions, f.Hint)
	}

	return &entity.GenerateInstructionsResponse{
		Fields:       fields,
		Instructions: instructions,
		ContextUsed:  formContext,
	}
}

// regenerateHints asks the chain for a JSON array of instruction strings.
// A malformed response is discarded, never surfaced.
func (u *Usecase) regenerateHints(ctx context.Context, formContext string, want int) ([]string, bool) {
	fields := catalog.FormFields()
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, f.Label)
	}

	prompt := fmt.Sprintf(
		"Formuliere für die folgenden Formularfelder jeweils eine kurze Ausfüllhilfe: %s. "+
			"Antworte ausschließlich mit einem JSON-Array aus %d Strings, in Feldreihenfolge.",
		strings.Join(labels, ", "), want,
	)

	result := u.chain.Generate(ctx, &entity.GenerationRequest{
		Prompt:  prompt,
		Context: formContext,
	})
	if result.Source == entity.SourceFallback {
		return nil, false
	}

	hints, err := parseInstructionList(result.Text)
	if err != nil || len(hints) != want {
		ctxzap.Warn(ctx, "discarding malformed regenerated instructions",
			zap.Error(err),
			zap.Int("got", len(hints)),
			zap.Int("want", want),
		)
		return nil, false
	}
	return hints, true
}

// parseInstructionList extracts a JSON string array from free-form LLM
// output, tolerating surrounding prose and code fences.
func parseInstructionList(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var hints []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &hints); err != nil {
		return nil, fmt.Errorf("parse instruction array: %w", err)
	}
	return hints, nil
}

// ChatHelp answers a free-form question about the form, with the filled
// field values as context.
func (u *Usecase) ChatHelp(ctx context.Context, req *entity.ChatRequest) *entity.ChatResponse {
	result := u.chain.Generate(ctx, &entity.GenerationRequest{
		Prompt:  req.Message,
		Context: buildChatContext(req),
	})

	return &entity.ChatResponse{
		Response: result.Text,
		LLMUsed:  result.Source != entity.SourceFallback,
	}
}

func buildChatContext(req *entity.ChatRequest) string {
	var b strings.Builder
	b.WriteString("FORMULAR-KONTEXT: Gebäude-Energieberatung\n")
	b.WriteString("SZENARIO: " + catalog.Scenario + "\n")
	if req.Context != "" {
		b.WriteString(req.Context + "\n")
	}

	if len(req.FormValues) > 0 {
		b.WriteString("BEREITS AUSGEFÜLLTE FELDER:\n")
		keys := make([]string, 0, len(req.FormValues))
		for k := range req.FormValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v := strings.TrimSpace(req.FormValues[k]); v != "" {
				fmt.Fprintf(&b, "- %s: %s\n", k, v)
			}
		}
	}
	return b.String()
}

// Save persists the submitted Variant A form data.
func (u *Usecase) Save(ctx context.Context, req *entity.FormSaveRequest) (*entity.StorageResult, error) {
	doc := map[string]any{
		"variant":      "A_sichtbares_formular",
		"instructions": req.Instructions,
		"values":       req.Values,
		"metadata":     req.Metadata,
	}
	return u.store.Persist(ctx, "variant_a", doc)
}
