package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"shootfed/src/infra/config"
)

// applicationName tags every session in pg_stat_activity.
const applicationName = "shootfed"

// Postgres owns the pgx pool shared by the repository and migrations.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// New opens a pool sized from cfg and pings it before returning.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		"host", poolCfg.ConnConfig.Host,
		"database", poolCfg.ConnConfig.Database,
		"max_conns", poolCfg.MaxConns,
	)
	return &Postgres{Pool: pool, log: log}, nil
}

func (p *Postgres) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	stat := p.Pool.Stat()
	p.Pool.Close()
	p.log.Info("database connection closed",
		"acquired_total", stat.AcquireCount(),
		"idle", stat.IdleConns(),
	)
}

// Health pings the pool. It backs the "database" component of
// /health/detailed.
func (p *Postgres) Health(ctx context.Context) error {
	if p == nil || p.Pool == nil {
		return errors.New("database not configured")
	}
	return p.Pool.Ping(ctx)
}
