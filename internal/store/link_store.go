package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LinkStore реализует repository.LinkRepository поверх PostgreSQL
type LinkStore struct {
	pool *pgxpool.Pool
}

// NewLinkStore создает новый LinkStore
func NewLinkStore(pool *pgxpool.Pool) *LinkStore {
	return &LinkStore{pool: pool}
}

// CreateLink сохраняет пару код-URL для указанного владельца.
// Вставка опирается на уникальный индекс short_code: одновременные вставки
// одного кода не могут обе пройти, проигравшая получает ErrCodeExists.
func (s *LinkStore) CreateLink(ctx context.Context, code, longURL string, userID int64) (*model.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO links (short_code, long_url, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, click_count, created_at
	`

	link := &model.Link{
		ShortCode: code,
		LongURL:   longURL,
		UserID:    userID,
	}

	err := s.pool.QueryRow(ctx, query, code, longURL, userID).Scan(
		&link.ID, &link.ClickCount, &link.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("code %s: %w", code, repository.ErrCodeExists)
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}

	return link, nil
}

// GetLinkByCode возвращает ссылку по короткому коду
func (s *LinkStore) GetLinkByCode(ctx context.Context, code string) (*model.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, short_code, long_url, click_count, created_at, user_id
		FROM links
		WHERE short_code = $1
	`

	link := &model.Link{}

	err := s.pool.QueryRow(ctx, query, code).Scan(
		&link.ID, &link.ShortCode, &link.LongURL, &link.ClickCount, &link.CreatedAt, &link.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code %s: %w", code, repository.ErrLinkNotFound)
		}
		return nil, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

// IsCodeTaken проверяет, существует ли ссылка с таким кодом
func (s *LinkStore) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT EXISTS
		(SELECT 1 FROM links WHERE short_code = $1)
	`

	var exists bool
	if err := s.pool.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

// IncrementClicks увеличивает счётчик переходов ровно на единицу.
// Инкремент выполняется самой базой, поэтому N конкурентных переходов
// всегда дают ровно +N без потерянных обновлений.
func (s *LinkStore) IncrementClicks(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		UPDATE links
		SET click_count = click_count + 1
		WHERE short_code = $1
	`

	tag, err := s.pool.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code %s: %w", code, repository.ErrLinkNotFound)
	}

	return nil
}

// GetLinksByUserID возвращает все ссылки пользователя, новые первыми
func (s *LinkStore) GetLinksByUserID(ctx context.Context, userID int64) ([]*model.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, short_code, long_url, click_count, created_at, user_id
		FROM links
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links by user: %w", err)
	}
	defer rows.Close()

	links := make([]*model.Link, 0)
	for rows.Next() {
		link := &model.Link{}
		if err := rows.Scan(
			&link.ID, &link.ShortCode, &link.LongURL, &link.ClickCount, &link.CreatedAt, &link.UserID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate link rows: %w", err)
	}

	return links, nil
}
