package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // Регистрируем pgx драйвер для database/sql
)

// Настройки пула подключений
const (
	maxConns          = int32(10)
	minConns          = int32(1)
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
	connectTimeout    = 5 * time.Second
)

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// Возвращает *sql.DB для миграций
	DB() *sql.DB
}

// Conn объединяет pgx-пул для запросов и sql.DB для миграций
type Conn struct {
	Pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Connect открывает пул подключений к PostgreSQL и проверяет его пингом.
// Помимо пула открывается sql.DB на pgx-драйвере: он нужен миграциям.
func Connect(ctx context.Context, dsn string) (*Conn, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}

	sqlDB.SetMaxOpenConns(int(maxConns))
	sqlDB.SetMaxIdleConns(int(minConns))
	sqlDB.SetConnMaxLifetime(maxConnLifetime)
	sqlDB.SetConnMaxIdleTime(maxConnIdleTime)

	return &Conn{Pool: pool, sqlDB: sqlDB}, nil
}

// Ping проверяет подключение
func (c *Conn) Ping(ctx context.Context) error {
	return c.Pool.Ping(ctx)
}

// Close закрывает соединения
func (c *Conn) Close() {
	c.Pool.Close()
	if c.sqlDB != nil {
		c.sqlDB.Close()
	}
}

// DB возвращает *sql.DB
func (c *Conn) DB() *sql.DB {
	return c.sqlDB
}
