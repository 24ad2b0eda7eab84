package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortly/internal/model"
	"go.uber.org/zap"
)

// Register обрабатывает POST /register: создает пользователя и выдает токен
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var request model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode register request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.auth.Register(r.Context(), request.Username, request.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, model.TokenResponse{Token: token})
}
