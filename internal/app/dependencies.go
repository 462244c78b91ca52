package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/config/db"
	"github.com/avc-dev/counselor-profiles/internal/handler"
	"github.com/avc-dev/counselor-profiles/internal/migrations"
	"github.com/avc-dev/counselor-profiles/internal/repository"
	"github.com/avc-dev/counselor-profiles/internal/service"
	"github.com/avc-dev/counselor-profiles/internal/store"
	"github.com/avc-dev/counselor-profiles/internal/usecase"
	"go.uber.org/zap"
)

// ErrInsecureSecretKey возвращается при STRICT_KEY_CHECK, если ключ slug не прошел проверку
var ErrInsecureSecretKey = errors.New("profile slug secret key is not secure")

type dependencies struct {
	handler  *handler.Handler
	auth     *service.AuthService
	repo     *repository.Repository
	database db.Database
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	if !service.ValidateKey(cfg, logger) && cfg.StrictKeyCheck {
		return nil, ErrInsecureSecretKey
	}

	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	codec := service.NewSlugCodec(cfg.SecretKey.Value())
	resolver := service.NewDirectoryResolver(codec, repo, cfg.Slug)
	profileUsecase := usecase.NewProfileUsecase(repo, resolver, cfg, logger)

	auth := service.NewAuthService(cfg.AdminJWTSecret)
	if !auth.Enabled() {
		logger.Warn("ADMIN_JWT_SECRET not set, admin routes are disabled")
	}

	return &dependencies{
		handler:  handler.New(profileUsecase, logger, repo),
		auth:     auth,
		repo:     repo,
		database: database,
	}, nil
}

// initStorage выбирает справочник: PostgreSQL, JSON файл или память
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN != "" {
		adapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		migrator := migrations.NewMigrator(adapter.DB(), logger)
		if err := migrator.RunUp(); err != nil {
			adapter.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using database storage")
		return store.NewDatabaseStore(adapter.Pool), adapter, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage",
			zap.String("path", cfg.FileStoragePath),
			zap.Int("counselors", fileStore.Len()),
		)
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}
