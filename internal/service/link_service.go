package service

import (
	"context"
	"fmt"
)

// CodeChecker сообщает, занят ли код в хранилище
type CodeChecker interface {
	IsCodeTaken(ctx context.Context, code string) (bool, error)
}

// Generator генерирует кандидатов коротких кодов
type Generator interface {
	GenerateCode() string
}

// LinkService подбирает свободный короткий код.
// Проверка занятости оптимистична: финальное слово за уникальным
// индексом хранилища при вставке.
type LinkService struct {
	checker     CodeChecker
	generator   Generator
	maxAttempts int
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(checker CodeChecker, generator Generator, maxAttempts int) *LinkService {
	return &LinkService{
		checker:     checker,
		generator:   generator,
		maxAttempts: maxAttempts,
	}
}

// GenerateUniqueCode генерирует код, не занятый на момент проверки.
// Цикл ограничен: устойчивые коллизии означают исчерпание алфавита
// или сломанный источник случайности и превращаются во внутреннюю ошибку.
func (s *LinkService) GenerateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code := s.generator.GenerateCode()

		taken, err := s.checker.IsCodeTaken(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}
