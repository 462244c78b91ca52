package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // Регистрируем pgx драйвер для database/sql
)

// ApplicationName имя, под которым сервис виден в pg_stat_activity
const ApplicationName = "counselor-profiles"

// ErrEmptyDSN возвращается при попытке подключиться без DATABASE_DSN
var ErrEmptyDSN = errors.New("database DSN is required")

// Config параметры подключения к справочнику консультантов в PostgreSQL.
//
// Пул обслуживает перебор кандидатов при разрешении slug и чтение карточек, поэтому
// MinConns держит хотя бы одно соединение прогретым. Миграции идут через отдельный *sql.DB.
type Config struct {
	DSN               string
	ApplicationName   string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию подключения к справочнику
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		ApplicationName:   ApplicationName,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
	}
}

// poolConfig разбирает DSN и накладывает параметры пула.
// application_name из DSN имеет приоритет над ApplicationName.
func (c *Config) poolConfig() (*pgxpool.Config, error) {
	if c.DSN == "" {
		return nil, ErrEmptyDSN
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	params := poolConfig.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok && c.ApplicationName != "" {
		params["application_name"] = c.ApplicationName
	}

	return poolConfig, nil
}

// Connect открывает пул для запросов справочника и одно соединение database/sql для golang-migrate
func (c *Config) Connect(ctx context.Context) (*DBAdapter, error) {
	poolConfig, err := c.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping directory database: %w", err)
	}

	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open migrations connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(c.MaxConnIdleTime)

	return NewDBAdapter(pool, sqlDB), nil
}

//go:generate mockery --name Database

// Database подключение к справочнику, которым владеет приложение.
// Ping питает /ping и gRPC health, Close вызывается при остановке, DB отдается мигратору.
type Database interface {
	Ping(ctx context.Context) error
	Close()
	DB() *sql.DB
}

// DBAdapter объединяет пул запросов справочника и *sql.DB мигратора
type DBAdapter struct {
	// Pool передается в store.DatabaseStore
	Pool *pgxpool.Pool
	// SQLDB используется только migrations.Migrator
	SQLDB *sql.DB
}

func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	return &DBAdapter{
		Pool:  pool,
		SQLDB: sqlDB,
	}
}

// Ping проверяет доступность справочника через пул
func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close закрывает пул и соединение мигратора
func (d *DBAdapter) Close() {
	d.Pool.Close()
	if d.SQLDB != nil {
		d.SQLDB.Close()
	}
}

func (d *DBAdapter) DB() *sql.DB {
	return d.SQLDB
}
