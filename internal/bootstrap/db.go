package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DBOptions struct {
	DSN       string
	ConnectTO time.Duration
	PingTO    time.Duration
}

// OpenDB connects and pings Postgres. Callers skip it when no DSN is set.
func OpenDB(ctx context.Context, opt DBOptions) (*pgxpool.Pool, error) {
	if opt.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cfg, err := pgxpool.ParseConfig(opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(cctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return pool, nil
}
