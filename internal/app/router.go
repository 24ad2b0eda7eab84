package app

import (
	"github.com/avc-dev/shortly/internal/handler"
	"github.com/avc-dev/shortly/internal/middleware"
	"github.com/avc-dev/shortly/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, tokens *service.TokenService, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	// Auth
	authMiddleware := middleware.NewAuthMiddleware(tokens, logger)

	// Публичные маршруты; редирект по коду нарочно без аутентификации,
	// короткими ссылками делятся с кем угодно
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/{shortCode}", h.Redirect)

	// Маршруты, требующие валидный bearer-токен
	r.With(authMiddleware.RequireAuth).Post("/shorten", h.Shorten)
	r.With(authMiddleware.RequireAuth).Get("/stats/{shortCode}", h.Stats)
	r.With(authMiddleware.RequireAuth).Get("/my-links", h.MyLinks)

	return r
}
