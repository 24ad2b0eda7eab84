package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrMissingJWTSecret возвращается когда не задан секрет подписи токенов.
// Без секрета процесс стартовать не должен.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// ShortCodeConfig содержит настройки генерации коротких кодов
type ShortCodeConfig struct {
	// Length задает длину генерируемого кода
	Length int `env:"SHORT_CODE_LENGTH" envDefault:"7"`
	// MaxAttempts ограничивает цикл подбора уникального кода
	MaxAttempts int `env:"SHORT_CODE_MAX_ATTEMPTS" envDefault:"10"`
}

// Config хранит конфигурацию сервиса
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL"`
	DatabaseDSN   string         `env:"DATABASE_DSN"`
	JWTSecret     string         `env:"JWT_SECRET"`
	TokenTTL      time.Duration  `env:"TOKEN_TTL" envDefault:"1h"`
	ShortCode     ShortCodeConfig
}

// Load собирает конфигурацию из переменных окружения и флагов.
// Флаги перекрывают окружение. Без JWT_SECRET запуск завершается ошибкой.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080/"),
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN (empty for in-memory storage)")
	flag.Parse()

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}
