package handler

import (
	"net/http"

	"github.com/avc-dev/shortly/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// Stats обрабатывает GET /stats/{shortCode}: статистика ссылки,
// доступная только её владельцу
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.logger.Debug("user ID not found in context")
		h.writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	code := chi.URLParam(r, "shortCode")

	stats, err := h.links.GetLinkStats(r.Context(), code, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
