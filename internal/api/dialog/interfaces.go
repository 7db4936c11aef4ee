package dialog

import (
	"context"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

type DialogUsecase interface {
	Start(ctx context.Context, dialogContext string) *entity.DialogStartResponse
	Message(ctx context.Context, sessionID, message string) *entity.DialogMessageResponse
	Save(ctx context.Context, req *entity.DialogSaveRequest) (*entity.StorageResult, error)
}
