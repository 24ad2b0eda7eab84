package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect обрабатывает GET /{shortCode}: публичный переход по короткой ссылке.
// Каждый успешный переход фиксируется в счётчике кликов.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortCode")

	longURL, err := h.links.ResolveAndCount(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, r, longURL, http.StatusFound)
}
