package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/usecase"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthUsecase определяет операции регистрации и входа
type AuthUsecase interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// LinkUsecase определяет операции со ссылками
type LinkUsecase interface {
	CreateShortLink(ctx context.Context, longURL, customCode string, userID int64) (*model.ShortenResponse, error)
	ResolveAndCount(ctx context.Context, code string) (string, error)
	GetLinkStats(ctx context.Context, code string, requesterID int64) (*model.StatsResponse, error)
	GetUserLinks(ctx context.Context, userID int64) ([]model.UserLinkResponse, error)
}

// Handler объединяет HTTP обработчики всех эндпоинтов
type Handler struct {
	auth     AuthUsecase
	links    LinkUsecase
	validate *validator.Validate
	logger   *zap.Logger
}

// New создает новый экземпляр Handler
func New(auth AuthUsecase, links LinkUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		auth:     auth,
		links:    links,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// writeJSON сериализует тело ответа с указанным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError отправляет единое JSON тело ошибки {"error": "..."}
func (h *Handler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, model.ErrorResponse{Error: message})
}

// handleError переводит ошибки бизнес-логики в HTTP статусы.
// Детали внутренних ошибок попадают только в лог, не в ответ.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL),
		errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrCodeTaken),
		errors.Is(err, usecase.ErrUsernameTaken):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrNotOwner):
		h.writeError(w, http.StatusForbidden, "unauthorized: you do not own this link")
	case errors.Is(err, usecase.ErrLinkNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
