package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ncnews/internal/config"
	"ncnews/internal/db/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	connectTimeout  = 15 * time.Second
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
)

// NewPostgresConnection opens the process-wide pool and pings it.
// The caller owns the pool and must Close it on shutdown.
func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.DbMaxConn
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Migrate applies all pending migrations.
func Migrate(pool *pgxpool.Pool) error {
	return withGoose(pool, func(db *sql.DB) error {
		return goose.Up(db, ".")
	})
}

// Recreate rolls every migration back and applies them again, leaving an
// empty schema.
func Recreate(pool *pgxpool.Pool) error {
	return withGoose(pool, func(db *sql.DB) error {
		if err := goose.Reset(db, "."); err != nil {
			return fmt.Errorf("reset migrations: %w", err)
		}
		return goose.Up(db, ".")
	})
}

func withGoose(pool *pgxpool.Pool, fn func(*sql.DB) error) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return fn(db)
}
