package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/pkg/logger"
	"github.com/momorit/mein-formularprojekt/internal/pkg/response"
	"github.com/momorit/mein-formularprojekt/internal/pkg/validator"
)

type Handler struct {
	usecase   FormUsecase
	validator *validator.Validator
}

func NewHandler(usecase FormUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GenerateInstructions handles POST /api/generate-instructions
func (h *Handler) GenerateInstructions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateInstructions")

	var req entity.GenerateInstructionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.usecase.GenerateInstructions(ctx, req.Context)
	response.Success(w, result)
}

// Chat handles POST /api/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateChat(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.usecase.ChatHelp(ctx, &req)
	response.Success(w, result)
}

// Save handles POST /api/save
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SaveForm")

	var req entity.FormSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateFormSave(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.usecase.Save(ctx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrStorageFailed) {
			ctxzap.Error(ctx, "both storage backends failed", zap.Error(err))
		} else {
			ctxzap.Error(ctx, "failed to save form data", zap.Error(err))
		}
		response.Error(w, http.StatusInternalServerError, "failed to save form data")
		return
	}

	response.Success(w, &entity.SaveResponse{
		Success:   true,
		Message:   fmt.Sprintf("Formulardaten gespeichert (%s)", result.Location()),
		Filename:  result.Filename,
		Storage:   result.Location(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
