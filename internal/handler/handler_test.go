package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/avc-dev/shortly/internal/middleware"
	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAuthUsecase реализует AuthUsecase для тестов обработчиков
type fakeAuthUsecase struct {
	registerFn func(ctx context.Context, username, password string) (string, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, username, password string) (string, error) {
	return f.registerFn(ctx, username, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginFn(ctx, username, password)
}

// fakeLinkUsecase реализует LinkUsecase для тестов обработчиков
type fakeLinkUsecase struct {
	createFn  func(ctx context.Context, longURL, customCode string, userID int64) (*model.ShortenResponse, error)
	resolveFn func(ctx context.Context, code string) (string, error)
	statsFn   func(ctx context.Context, code string, requesterID int64) (*model.StatsResponse, error)
	listFn    func(ctx context.Context, userID int64) ([]model.UserLinkResponse, error)
}

func (f *fakeLinkUsecase) CreateShortLink(ctx context.Context, longURL, customCode string, userID int64) (*model.ShortenResponse, error) {
	return f.createFn(ctx, longURL, customCode, userID)
}

func (f *fakeLinkUsecase) ResolveAndCount(ctx context.Context, code string) (string, error) {
	return f.resolveFn(ctx, code)
}

func (f *fakeLinkUsecase) GetLinkStats(ctx context.Context, code string, requesterID int64) (*model.StatsResponse, error) {
	return f.statsFn(ctx, code, requesterID)
}

func (f *fakeLinkUsecase) GetUserLinks(ctx context.Context, userID int64) ([]model.UserLinkResponse, error) {
	return f.listFn(ctx, userID)
}

// testTokens используется всеми тестами обработчиков
var testTokens = service.NewTokenService("handler-test-secret", time.Hour)

// newTestRouter собирает роутер с реальным auth-миддлваром,
// как в продакшн-конфигурации
func newTestRouter(auth AuthUsecase, links LinkUsecase) http.Handler {
	h := New(auth, links, zap.NewNop())

	r := chi.NewRouter()
	authMiddleware := middleware.NewAuthMiddleware(testTokens, zap.NewNop())

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/{shortCode}", h.Redirect)
	r.With(authMiddleware.RequireAuth).Post("/shorten", h.Shorten)
	r.With(authMiddleware.RequireAuth).Get("/stats/{shortCode}", h.Stats)
	r.With(authMiddleware.RequireAuth).Get("/my-links", h.MyLinks)

	return r
}

// bearerToken выпускает валидный токен для тестового пользователя
func bearerToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	token, err := testTokens.Issue(userID, username)
	require.NoError(t, err)
	return "Bearer " + token
}
