package app

import (
	"context"

	"github.com/avc-dev/shortly/internal/config"
	"github.com/avc-dev/shortly/internal/config/db"
	"github.com/avc-dev/shortly/internal/handler"
	"github.com/avc-dev/shortly/internal/service"
	"go.uber.org/zap"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	tokens   *service.TokenService
	database db.Database
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  deps.handler,
		tokens:   deps.tokens,
		database: deps.database,
	}, nil
}

// Run запускает приложение и блокируется до его остановки
func Run() error {
	ctx := context.Background()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.database != nil {
		a.database.Close()
	}
}
