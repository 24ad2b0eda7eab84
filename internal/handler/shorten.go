package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortly/internal/middleware"
	"github.com/avc-dev/shortly/internal/model"
	"go.uber.org/zap"
)

// Shorten обрабатывает POST /shorten: создает короткую ссылку
// для аутентифицированного пользователя
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.logger.Debug("user ID not found in context")
		h.writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var request model.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode shorten request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.writeError(w, http.StatusBadRequest, "longUrl is required")
		return
	}

	response, err := h.links.CreateShortLink(r.Context(), request.LongURL, request.CustomCode, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, response)
}
