package handler

import (
	"net/http"

	"github.com/avc-dev/shortly/internal/middleware"
)

// MyLinks обрабатывает GET /my-links: все ссылки аутентифицированного
// пользователя, новые первыми. Пустой список считается валидным ответом.
func (h *Handler) MyLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.logger.Debug("user ID not found in context")
		h.writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	links, err := h.links.GetUserLinks(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, links)
}
