package study

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/pkg/logger"
	"github.com/momorit/mein-formularprojekt/internal/pkg/response"
	"github.com/momorit/mein-formularprojekt/internal/pkg/validator"
)

type StudyUsecase interface {
	Save(ctx context.Context, req *entity.StudySaveRequest) (*entity.StorageResult, error)
}

type Handler struct {
	usecase   StudyUsecase
	validator *validator.Validator
}

func NewHandler(usecase StudyUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// Save handles POST /api/study/save
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StudySave")

	var req entity.StudySaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateStudySave(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.usecase.Save(ctx, &req)
	if err != nil {
		ctxzap.Error(ctx, "failed to save study data", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to save study data")
		return
	}

	response.Success(w, &entity.SaveResponse{
		Success:   true,
		Message:   fmt.Sprintf("Studiendaten gespeichert (%s)", result.Location()),
		Filename:  result.Filename,
		Storage:   result.Location(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// RegisterRoutes registers the study routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/study/save", h.Save)
}
