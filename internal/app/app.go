package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/config/db"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет сервис публичных ссылок на профили консультантов
type App struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	deps   *dependencies
	dbPool db.Database
}

// New собирает приложение по конфигурации
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(deps, logger, cfg),
		deps:   deps,
		dbPool: deps.database,
	}, nil
}

// newLogger создает логгер под окружение: человекочитаемый в development, JSON в остальных
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == config.EnvDevelopment {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Run загружает конфигурацию и запускает приложение до получения SIGINT или SIGTERM
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает подключение к базе данных, если оно было открыто
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("Database connection closed")
	}
}
