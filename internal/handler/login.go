package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortly/internal/model"
	"go.uber.org/zap"
)

// Login обрабатывает POST /login: проверяет учетные данные и выдает токен
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var request model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode login request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}
