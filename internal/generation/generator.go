// Package generation implements the text-generation fallback chain: an
// ordered list of providers tried once each, terminated by a canned
// responder that never fails. Provider errors are swallowed here and
// never reach the HTTP caller.
package generation

import (
	"context"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

// TextGenerator produces a textual answer for a single request.
type TextGenerator interface {
	Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error)
	Name() string
}
