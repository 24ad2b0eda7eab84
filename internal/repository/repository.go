package repository

import (
	"context"
	"errors"

	"github.com/avc-dev/shortly/internal/model"
)

var (
	// ErrUserNotFound возвращается когда пользователь с таким именем не найден
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken возвращается при попытке создать пользователя с занятым именем
	ErrUsernameTaken = errors.New("username already exists")
	// ErrLinkNotFound возвращается когда ссылка с таким кодом не найдена
	ErrLinkNotFound = errors.New("link not found")
	// ErrCodeExists возвращается при нарушении уникальности короткого кода.
	// Гонку двух вставок разрешает уникальный индекс хранилища.
	ErrCodeExists = errors.New("short code already exists")
)

// UserRepository определяет методы для работы с хранилищем пользователей
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// LinkRepository определяет методы для работы с хранилищем ссылок
type LinkRepository interface {
	CreateLink(ctx context.Context, code, longURL string, userID int64) (*model.Link, error)
	GetLinkByCode(ctx context.Context, code string) (*model.Link, error)
	IsCodeTaken(ctx context.Context, code string) (bool, error)
	IncrementClicks(ctx context.Context, code string) error
	GetLinksByUserID(ctx context.Context, userID int64) ([]*model.Link, error)
}
