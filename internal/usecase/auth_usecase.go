package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет интерфейс для работы с хранилищем пользователей
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// TokenIssuer выпускает токены для аутентифицированных пользователей
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// AuthUsecase содержит бизнес-логику регистрации и входа
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

// NewAuthUsecase создает новый экземпляр AuthUsecase
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register создает пользователя и возвращает токен для него.
// Пароль хэшируется bcrypt, в хранилище попадает только хэш.
func (u *AuthUsecase) Register(ctx context.Context, username, password string) (string, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.logger.Error("failed to hash password", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	user, err := u.users.CreateUser(ctx, username, string(passwordHash))
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return "", ErrUsernameTaken
		}
		u.logger.Error("failed to create user",
			zap.String("username", username),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	token, err := u.tokens.Issue(user.ID, user.Username)
	if err != nil {
		u.logger.Error("failed to issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return token, nil
}

// Login проверяет учетные данные и возвращает токен.
// Отсутствие пользователя и неверный пароль дают одну и ту же ошибку,
// чтобы по ответу нельзя было перебирать имена.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		u.logger.Error("failed to look up user",
			zap.String("username", username),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Username)
	if err != nil {
		u.logger.Error("failed to issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return token, nil
}
