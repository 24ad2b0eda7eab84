package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/shortly/internal/model"
	"github.com/avc-dev/shortly/internal/repository"
)

// MemoryUserStore реализует repository.UserRepository в памяти.
// Используется при запуске без DATABASE_DSN и в тестах.
type MemoryUserStore struct {
	mutex  sync.Mutex
	nextID int64
	users  map[string]*model.User
}

// NewMemoryUserStore создает пустое in-memory хранилище пользователей
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		nextID: 1,
		users:  make(map[string]*model.User),
	}
}

// CreateUser сохраняет пользователя, отклоняя занятые имена
func (s *MemoryUserStore) CreateUser(_ context.Context, username, passwordHash string) (*model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[username]; exists {
		return nil, fmt.Errorf("username %s: %w", username, repository.ErrUsernameTaken)
	}

	user := &model.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextID++
	s.users[username] = user

	copied := *user
	return &copied, nil
}

// GetUserByUsername возвращает пользователя по имени
func (s *MemoryUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("username %s: %w", username, repository.ErrUserNotFound)
	}

	copied := *user
	return &copied, nil
}

// MemoryLinkStore реализует repository.LinkRepository в памяти
type MemoryLinkStore struct {
	mutex  sync.Mutex
	nextID int64
	links  map[string]*model.Link
}

// NewMemoryLinkStore создает пустое in-memory хранилище ссылок
func NewMemoryLinkStore() *MemoryLinkStore {
	return &MemoryLinkStore{
		nextID: 1,
		links:  make(map[string]*model.Link),
	}
}

// CreateLink сохраняет пару код-URL, отклоняя занятые коды.
// Проверка и вставка выполняются под одним мьютексом, как единое целое.
func (s *MemoryLinkStore) CreateLink(_ context.Context, code, longURL string, userID int64) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.links[code]; exists {
		return nil, fmt.Errorf("code %s: %w", code, repository.ErrCodeExists)
	}

	link := &model.Link{
		ID:        s.nextID,
		ShortCode: code,
		LongURL:   longURL,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	s.nextID++
	s.links[code] = link

	copied := *link
	return &copied, nil
}

// GetLinkByCode возвращает ссылку по короткому коду
func (s *MemoryLinkStore) GetLinkByCode(_ context.Context, code string) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, repository.ErrLinkNotFound)
	}

	copied := *link
	return &copied, nil
}

// IsCodeTaken проверяет, существует ли ссылка с таким кодом
func (s *MemoryLinkStore) IsCodeTaken(_ context.Context, code string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exists := s.links[code]
	return exists, nil
}

// IncrementClicks увеличивает счётчик переходов на единицу под мьютексом
func (s *MemoryLinkStore) IncrementClicks(_ context.Context, code string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return fmt.Errorf("code %s: %w", code, repository.ErrLinkNotFound)
	}

	link.ClickCount++
	return nil
}

// GetLinksByUserID возвращает все ссылки пользователя, новые первыми
func (s *MemoryLinkStore) GetLinksByUserID(_ context.Context, userID int64) ([]*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	links := make([]*model.Link, 0)
	for _, link := range s.links {
		if link.UserID == userID {
			copied := *link
			links = append(links, &copied)
		}
	}

	// Порядок как в SQL-хранилище: created_at DESC, id DESC
	sort.Slice(links, func(i, j int) bool {
		if !links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].CreatedAt.After(links[j].CreatedAt)
		}
		return links[i].ID > links[j].ID
	})

	return links, nil
}
