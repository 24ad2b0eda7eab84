package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortly/internal/service"
	"github.com/avc-dev/shortly/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthUsecase(t *testing.T) (*AuthUsecase, *service.TokenService) {
	t.Helper()
	tokens := service.NewTokenService("test-secret", time.Hour)
	return NewAuthUsecase(store.NewMemoryUserStore(), tokens, zap.NewNop()), tokens
}

// TestAuthUsecase_RegisterThenLogin проверяет, что после регистрации можно
// войти с теми же учетными данными, и оба токена проходят проверку
func TestAuthUsecase_RegisterThenLogin(t *testing.T) {
	// Arrange
	auth, tokens := newAuthUsecase(t)
	ctx := context.Background()

	// Act
	registerToken, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	loginToken, err := auth.Login(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	// Assert
	registerClaims, err := tokens.Verify(registerToken)
	require.NoError(t, err)
	loginClaims, err := tokens.Verify(loginToken)
	require.NoError(t, err)

	assert.Equal(t, "alice", registerClaims.Username)
	assert.Equal(t, registerClaims.UserID, loginClaims.UserID)
}

// TestAuthUsecase_DuplicateUsername проверяет, что повторная регистрация
// того же имени отклоняется
func TestAuthUsecase_DuplicateUsername(t *testing.T) {
	// Arrange
	auth, _ := newAuthUsecase(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "first-pass")
	require.NoError(t, err)

	// Act
	token, err := auth.Register(ctx, "alice", "second-pass")

	// Assert
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Empty(t, token)

	// Первый пароль продолжает работать
	_, err = auth.Login(ctx, "alice", "first-pass")
	assert.NoError(t, err)
}

// TestAuthUsecase_LoginSymmetricErrors проверяет, что неизвестное имя и
// неверный пароль дают одну и ту же ошибку: по ответу нельзя понять,
// существует ли пользователь
func TestAuthUsecase_LoginSymmetricErrors(t *testing.T) {
	// Arrange
	auth, _ := newAuthUsecase(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{
			name:     "Unknown username",
			username: "bob",
			password: "s3cret-pass",
		},
		{
			name:     "Wrong password",
			username: "alice",
			password: "wrong-pass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			token, err := auth.Login(ctx, tt.username, tt.password)

			// Assert
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
			assert.Empty(t, token)
		})
	}
}

// TestAuthUsecase_PasswordNeverStoredPlaintext проверяет, что в хранилище
// попадает bcrypt-хэш, а не исходный пароль
func TestAuthUsecase_PasswordNeverStoredPlaintext(t *testing.T) {
	// Arrange
	users := store.NewMemoryUserStore()
	tokens := service.NewTokenService("test-secret", time.Hour)
	auth := NewAuthUsecase(users, tokens, zap.NewNop())
	ctx := context.Background()

	// Act
	_, err := auth.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	// Assert
	stored, err := users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, len(stored.PasswordHash) > 0)
}
