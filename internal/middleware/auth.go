package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/service"
	"go.uber.org/zap"
)

// contextKey представляет типизированный ключ контекста запроса
type contextKey string

const (
	userIDContextKey   contextKey = "user_id"
	usernameContextKey contextKey = "username"
)

// TokenVerifier проверяет bearer-токен и извлекает claims
type TokenVerifier interface {
	Verify(tokenString string) (*service.Claims, error)
}

// AuthMiddleware представляет миддлвар для аутентификации пользователей
// по заголовку Authorization: Bearer <token>
type AuthMiddleware struct {
	tokens TokenVerifier
	logger *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(tokens TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth возвращает миддлвар, который требует валидный bearer-токен
// и добавляет идентичность пользователя в контекст запроса
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeUnauthorized(w, "no token provided")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := am.tokens.Verify(tokenString)
		if err != nil {
			am.logger.Debug("token verification failed", zap.Error(err))
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, usernameContextKey, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext извлекает идентификатор пользователя из контекста запроса
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}

// GetUsernameFromContext извлекает имя пользователя из контекста запроса
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: message})
}
