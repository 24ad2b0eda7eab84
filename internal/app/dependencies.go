package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortly/internal/config"
	"github.com/avc-dev/shortly/internal/config/db"
	"github.com/avc-dev/shortly/internal/handler"
	"github.com/avc-dev/shortly/internal/migrations"
	"github.com/avc-dev/shortly/internal/repository"
	"github.com/avc-dev/shortly/internal/service"
	"github.com/avc-dev/shortly/internal/store"
	"github.com/avc-dev/shortly/internal/usecase"
	"go.uber.org/zap"
)

// dependencies собирает построенные зависимости приложения
type dependencies struct {
	handler  *handler.Handler
	tokens   *service.TokenService
	database db.Database
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	users, links, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	generator := service.NewCodeGenerator(cfg.ShortCode.Length)
	linkService := service.NewLinkService(links, generator, cfg.ShortCode.MaxAttempts)

	authUsecase := usecase.NewAuthUsecase(users, tokens, logger)
	linkUsecase := usecase.NewLinkUsecase(links, linkService, cfg, logger)

	h := handler.New(authUsecase, linkUsecase, logger)

	return &dependencies{
		handler:  h,
		tokens:   tokens,
		database: database,
	}, nil
}

// initStorage создает хранилище на основе конфигурации: PostgreSQL при
// заданном DSN, иначе in-memory
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.UserRepository, repository.LinkRepository, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory storage")
		return store.NewMemoryUserStore(), store.NewMemoryLinkStore(), nil, nil
	}

	conn, err := db.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(conn.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if version, dirty, err := migrator.GetVersion(); err == nil {
		logger.Info("Database schema",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	}

	logger.Info("Using PostgreSQL storage")
	return store.NewUserStore(conn.Pool), store.NewLinkStore(conn.Pool), conn, nil
}
