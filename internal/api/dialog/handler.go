package dialog

import (
	"encoding/json"
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
	usecase   DialogUsecase
	validator *validator.Validator
}

func NewHandler(usecase DialogUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// Start handles POST /api/dialog/start
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DialogStart")

	// An empty body is allowed here: context is optional
	var req entity.DialogStartRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result := h.usecase.Start(ctx, req.Context)
	response.Success(w, result)
}

// Message handles POST /api/dialog/message
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DialogMessage")

	var req entity.DialogMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateDialogMessage(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.usecase.Message(ctx, req.SessionID, req.Message)
	response.Success(w, result)
}

// Save handles POST /api/dialog/save
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DialogSave")

	var req entity.DialogSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateDialogSave(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.usecase.Save(ctx, &req)
	if err != nil {
		ctxzap.Error(ctx, "failed to save dialog data", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to save dialog data")
		return
	}

	response.Success(w, &entity.SaveResponse{
		Success:   true,
		Message:   fmt.Sprintf("Dialogdaten gespeichert (%s)", result.Location()),
		Filename:  result.Filename,
		Storage:   result.Location(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
