// Package cli implements the slugctl administration commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/config/db"
	"github.com/avc-dev/counselor-profiles/internal/repository"
	"github.com/avc-dev/counselor-profiles/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrNoDirectory возвращается командами, которым нужен справочник, если не задан ни --dsn, ни --file
var ErrNoDirectory = errors.New("no counselor directory configured: set --dsn or --file")

type options struct {
	// environ подменяет окружение процесса в тестах
	environ map[string]string

	key     string
	dsn     string
	file    string
	baseURL string
	verbose bool
}

// NewRootCmd создает корневую команду slugctl
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(environ map[string]string) *cobra.Command {
	opts := &options{environ: environ}

	root := &cobra.Command{
		Use:          "slugctl",
		Short:        "Manage counselor profile slugs",
		Long:         "Encode counselor ids into public profile slugs, resolve slugs back and inspect the slug secret key.",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.key, "key", "k", "", "Slug secret key (default: $PROFILE_ENCRYPT_KEY)")
	flags.StringVarP(&opts.dsn, "dsn", "d", "", "PostgreSQL DSN (default: $DATABASE_DSN)")
	flags.StringVarP(&opts.file, "file", "f", "", "Counselor directory JSON file (default: $FILE_STORAGE_PATH)")
	flags.StringVarP(&opts.baseURL, "base-url", "b", "", "Base URL for profile links (default: $BASE_URL)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	root.AddCommand(
		newEncodeCmd(opts),
		newResolveCmd(opts),
		newListCmd(opts),
		newCheckKeyCmd(opts),
		newIssueTokenCmd(opts),
		newMigrateCmd(opts),
		newImportCmd(opts),
	)

	return root
}

// loadConfig читает конфигурацию из окружения и накладывает флаги командной строки
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(nil, o.environ)
	if err != nil {
		return nil, err
	}

	if o.key != "" {
		cfg.SecretKey = config.SecretKey(o.key)
		cfg.SecretKeyConfigured = true
	}
	if o.dsn != "" {
		cfg.DatabaseDSN = o.dsn
	}
	if o.file != "" {
		cfg.FileStoragePath = o.file
	}
	if o.baseURL != "" {
		if err := cfg.BaseURL.Set(o.baseURL); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (o *options) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openDirectory открывает справочник консультантов только для чтения
func openDirectory(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	if cfg.DatabaseDSN != "" {
		adapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return store.NewDatabaseStore(adapter.Pool), adapter.Close, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() {}, nil
	}

	return nil, nil, ErrNoDirectory
}
