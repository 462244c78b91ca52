package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment окружение, в котором запущено приложение
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

const (
	DefaultResolveCandidateLimit = 1000
	DefaultBatchSlugLimit        = 10000
	DefaultBatchWorkers          = 4
	DefaultRequestTimeout        = 5 * time.Second
	DefaultShutdownTimeout       = 10 * time.Second
)

// SlugConfig настройки разрешения и пакетной генерации slug
type SlugConfig struct {
	// ResolveCandidateLimit верхняя граница перебора кандидатов при разрешении slug
	ResolveCandidateLimit int `env:"RESOLVE_CANDIDATE_LIMIT"`
	// BatchLimit максимальное число консультантов в пакетной выдаче ссылок
	BatchLimit   int `env:"BATCH_SLUG_LIMIT"`
	BatchWorkers int `env:"BATCH_WORKERS"`
}

// Config конфигурация приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	GRPCAddress     NetworkAddress `env:"GRPC_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`

	SecretKey SecretKey `env:"PROFILE_ENCRYPT_KEY"`
	// SecretKeyConfigured false, если ключ не был задан и подставлен DefaultSecretKey
	SecretKeyConfigured bool `env:"-"`
	StrictKeyCheck      bool `env:"STRICT_KEY_CHECK"`

	AdminJWTSecret string      `env:"ADMIN_JWT_SECRET"`
	Environment    Environment `env:"APP_ENV"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	Slug SlugConfig
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:       NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:             URLPrefix("http://localhost:8080"),
		SecretKey:           DefaultSecretKey,
		SecretKeyConfigured: false,
		Environment:         EnvDevelopment,
		RequestTimeout:      DefaultRequestTimeout,
		ShutdownTimeout:     DefaultShutdownTimeout,
		Slug: SlugConfig{
			ResolveCandidateLimit: DefaultResolveCandidateLimit,
			BatchLimit:            DefaultBatchSlugLimit,
			BatchWorkers:          DefaultBatchWorkers,
		},
	}
}

// Load читает конфигурацию из аргументов командной строки и окружения процесса
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:], nil)
}

// LoadFrom читает конфигурацию из args и environ.
// Переменные окружения имеют приоритет над флагами. Если environ равен nil, используется окружение процесса.
func LoadFrom(args []string, environ map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()
	cfg.SecretKey = ""

	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.GRPCAddress, "g", "address to run gRPC health server")
	fs.Var(&cfg.BaseURL, "b", "base URL for profile links")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to counselor directory JSON file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.Func("k", "secret key for profile slugs", func(value string) error {
		cfg.SecretKey = SecretKey(value)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = DefaultSecretKey
	} else {
		cfg.SecretKeyConfigured = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации.
// Длина ключа здесь не проверяется: это мягкая проверка при старте, см. service.ValidateKey.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("invalid environment: %s (must be one of: development, production, test)", c.Environment)
	}

	if c.ServerAddress.IsZero() {
		return errors.New("server address cannot be empty")
	}
	if c.BaseURL == "" {
		return errors.New("base URL cannot be empty")
	}
	if c.Slug.ResolveCandidateLimit <= 0 {
		return errors.New("resolve candidate limit must be positive")
	}
	if c.Slug.BatchLimit <= 0 {
		return errors.New("batch slug limit must be positive")
	}
	if c.Slug.BatchWorkers <= 0 {
		return errors.New("batch workers must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	return nil
}

// IsProduction сообщает, что приложение запущено в продакшене
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
