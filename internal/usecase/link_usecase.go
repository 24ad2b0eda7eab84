package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/avc-dev/shortly/internal/config"
	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/repository"
	"go.uber.org/zap"
)

// codePattern описывает допустимый пользовательский код:
// 1-20 символов из букв, цифр, дефиса и подчёркивания
var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,20}$`)

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	CreateLink(ctx context.Context, code, longURL string, userID int64) (*model.Link, error)
	GetLinkByCode(ctx context.Context, code string) (*model.Link, error)
	IncrementClicks(ctx context.Context, code string) error
	GetLinksByUserID(ctx context.Context, userID int64) ([]*model.Link, error)
}

// CodeAllocator подбирает свободный короткий код
type CodeAllocator interface {
	GenerateUniqueCode(ctx context.Context) (string, error)
}

// LinkUsecase содержит бизнес-логику для работы со ссылками
type LinkUsecase struct {
	repo   LinkRepository
	codes  CodeAllocator
	cfg    *config.Config
	logger *zap.Logger
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, codes CodeAllocator, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:   repo,
		codes:  codes,
		cfg:    cfg,
		logger: logger,
	}
}

// CreateShortLink валидирует URL и код, сохраняет ссылку и
// возвращает абсолютный короткий URL
func (u *LinkUsecase) CreateShortLink(ctx context.Context, longURL, customCode string, userID int64) (*model.ShortenResponse, error) {
	longURL = strings.TrimSpace(longURL)
	longURL = strings.Trim(longURL, `"'`)

	if longURL == "" {
		return nil, ErrEmptyURL
	}

	parsedURL, err := url.Parse(longURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, ErrInvalidURL
	}

	var link *model.Link
	if customCode != "" {
		link, err = u.createWithCustomCode(ctx, longURL, customCode, userID)
	} else {
		link, err = u.createWithGeneratedCode(ctx, longURL, userID)
	}
	if err != nil {
		return nil, err
	}

	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), link.ShortCode)
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", link.ShortCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return &model.ShortenResponse{
		ShortURL:  shortURL,
		ShortCode: link.ShortCode,
		LongURL:   link.LongURL,
	}, nil
}

// createWithCustomCode сохраняет ссылку под кодом, выбранным пользователем.
// Гонку двух одинаковых кодов разрешает уникальный индекс: проигравшая
// вставка возвращается вызывающему как занятый код.
func (u *LinkUsecase) createWithCustomCode(ctx context.Context, longURL, customCode string, userID int64) (*model.Link, error) {
	if !codePattern.MatchString(customCode) {
		return nil, ErrInvalidCode
	}

	link, err := u.repo.CreateLink(ctx, customCode, longURL, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCodeExists) {
			return nil, ErrCodeTaken
		}
		u.logger.Error("failed to create link",
			zap.String("code", customCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return link, nil
}

// createWithGeneratedCode сохраняет ссылку под сгенерированным кодом.
// Коллизия на вставке (кто-то занял код между проверкой и INSERT)
// не фатальна: генерируем заново, число попыток ограничено.
func (u *LinkUsecase) createWithGeneratedCode(ctx context.Context, longURL string, userID int64) (*model.Link, error) {
	for attempt := 0; attempt < u.cfg.ShortCode.MaxAttempts; attempt++ {
		code, err := u.codes.GenerateUniqueCode(ctx)
		if err != nil {
			u.logger.Error("failed to generate unique code", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
		}

		link, err := u.repo.CreateLink(ctx, code, longURL, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCodeExists) {
				continue
			}
			u.logger.Error("failed to create link",
				zap.String("code", code),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
		}

		return link, nil
	}

	return nil, fmt.Errorf("%w: insert kept colliding on generated codes", ErrServiceUnavailable)
}

// ResolveAndCount возвращает оригинальный URL по коду и фиксирует переход.
// Ошибка инкремента логируется, но не ломает редирект посетителю.
func (u *LinkUsecase) ResolveAndCount(ctx context.Context, code string) (string, error) {
	link, err := u.repo.GetLinkByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return "", ErrLinkNotFound
		}
		u.logger.Error("failed to resolve link", zap.String("code", code), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if err := u.repo.IncrementClicks(ctx, code); err != nil {
		u.logger.Error("failed to record click", zap.String("code", code), zap.Error(err))
	}

	return link.LongURL, nil
}

// GetLinkStats возвращает статистику ссылки её владельцу
func (u *LinkUsecase) GetLinkStats(ctx context.Context, code string, requesterID int64) (*model.StatsResponse, error) {
	link, err := u.repo.GetLinkByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, ErrLinkNotFound
		}
		u.logger.Error("failed to get link stats", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if link.UserID != requesterID {
		return nil, ErrNotOwner
	}

	return &model.StatsResponse{
		LongURL:    link.LongURL,
		ClickCount: link.ClickCount,
		CreatedAt:  link.CreatedAt,
		UserID:     link.UserID,
	}, nil
}

// GetUserLinks возвращает все ссылки пользователя, новые первыми.
// Пустой список не считается ошибкой.
func (u *LinkUsecase) GetUserLinks(ctx context.Context, userID int64) ([]model.UserLinkResponse, error) {
	links, err := u.repo.GetLinksByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("failed to get user links", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	result := make([]model.UserLinkResponse, 0, len(links))
	for _, link := range links {
		result = append(result, model.UserLinkResponse{
			ShortCode:  link.ShortCode,
			LongURL:    link.LongURL,
			ClickCount: link.ClickCount,
			CreatedAt:  link.CreatedAt,
		})
	}

	return result, nil
}
