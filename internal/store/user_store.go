package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// queryTimeout ограничивает время одного обращения к базе,
// чтобы зависший запрос превращался в 500, а не висел бесконечно
const queryTimeout = 3 * time.Second

// uniqueViolation соответствует коду ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// UserStore реализует repository.UserRepository поверх PostgreSQL
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore создает новый UserStore
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// CreateUser сохраняет пользователя с уже захэшированным паролем.
// Дубликат имени определяется по нарушению уникального индекса.
func (s *UserStore) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := s.pool.QueryRow(ctx, query, username, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("username %s: %w", username, repository.ErrUsernameTaken)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetUserByUsername возвращает пользователя по точному совпадению имени
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	user := &model.User{}

	err := s.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("username %s: %w", username, repository.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	return user, nil
}
