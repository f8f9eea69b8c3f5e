// Package database opens the primary Postgres pool. Dialect specific
// repositories live in the postgres and sqlite subpackages; schema lives in
// migrations.
package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// Pool is the part of a connection pool health checks need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig sizes the connection pool. Zero durations use the defaults.
type PoolConfig struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// NewPool creates a new PostgreSQL connection pool and checks it answers
func NewPool(ctx context.Context, connString string, cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = int32(min(cfg.MaxConns, math.MaxInt32))
	}
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	config.MaxConnIdleTime = DefaultMaxConnIdleTime
	if cfg.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	config.MaxConnLifetime = DefaultMaxConnLifetime
	if cfg.MaxConnLifetime > 0 {
		config.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", config.MaxConns)
	return pool, nil
}
