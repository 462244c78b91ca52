package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/avc-dev/counselor-profiles/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name ProfileUsecase

// ProfileUsecase определяет операции над публичными ссылками на профили
type ProfileUsecase interface {
	ResolveProfileID(ctx context.Context, slug string) (model.CounselorID, error)
	GetProfile(ctx context.Context, slug string) (model.ProfileResponse, error)
	GetCounselorLink(ctx context.Context, id string) (model.ProfileLink, error)
	ListProfileLinks(ctx context.Context) ([]model.ProfileLink, error)
	SlugSelfCheck(ctx context.Context) (model.SlugCheckReport, error)
}

// Pinger проверяет доступность справочника
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorResponse тело ответа при ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler обрабатывает HTTP запросы к профилям консультантов
type Handler struct {
	usecase ProfileUsecase
	logger  *zap.Logger
	db      Pinger
}

// New создает новый экземпляр Handler
func New(usecase ProfileUsecase, logger *zap.Logger, db Pinger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		db:      db,
	}
}

// handleError отображает ошибки usecase на HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlug):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid profile slug"})
	case errors.Is(err, usecase.ErrInvalidCounselorID):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid counselor id"})
	case errors.Is(err, usecase.ErrProfileNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "profile not found"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
