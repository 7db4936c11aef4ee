package form

import (
	"context"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

type FormUsecase interface {
	GenerateInstructions(ctx context.Context, formContext string) *entity.GenerateInstructionsResponse
	ChatHelp(ctx context.Context, req *entity.ChatRequest) *entity.ChatResponse
	Save(ctx context.Context, req *entity.FormSaveRequest) (*entity.StorageResult, error)
}
