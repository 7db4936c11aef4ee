// Package study persists the complete end-of-study record collected by
// the questionnaire frontend.
package study

import (
	"context"

	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/storage"
)

type Usecase struct {
	store *storage.DualStore
}

func NewUsecase(store *storage.DualStore) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Save(ctx context.Context, req *entity.StudySaveRequest) (*entity.StorageResult, error) {
	doc := map[string]any{
		"study_type":    "FormularIQ_Usability_Study",
		"participantId": req.ParticipantID,
		"demographics":  req.Demographics,
		"variantAData":  req.VariantAData,
		"variantBData":  req.VariantBData,
		"surveys":       req.Surveys,
		"comparison":    req.Comparison,
		"metadata":      req.Metadata,
	}
	return u.store.Persist(ctx, "study_complete_"+req.ParticipantID, doc)
}
