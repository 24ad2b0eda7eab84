package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims представляет содержимое токена: идентичность пользователя
// плюс стандартные поля времени выдачи и истечения
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет подписанные JWT токены.
// Токены не отзываются, единственный механизм инвалидации это истечение срока.
type TokenService struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time // подменяется в тестах
}

// NewTokenService создает новый экземпляр TokenService
func NewTokenService(jwtSecret string, ttl time.Duration) *TokenService {
	return &TokenService{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Issue создает подписанный токен для пользователя со сроком действия ttl
func (s *TokenService) Issue(userID int64, username string) (string, error) {
	issuedAt := s.now()

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// Verify проверяет подпись и срок действия токена и извлекает claims.
// Различает истёкший, нечитаемый и подделанный токен.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
