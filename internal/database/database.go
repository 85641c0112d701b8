// Package database opens the PostgreSQL connection pool.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes the connection pool
type PoolConfig struct {
	MaxConns    int
	MinConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// NewPool creates a PostgreSQL connection pool and checks that it answers
func NewPool(ctx context.Context, connString string, pc PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(pc.MaxConns, math.MaxInt32)
	if maxConns < 1 {
		maxConns = DefaultMaxConnections
	}
	minConns := pc.MinConns
	if minConns == 0 {
		minConns = DefaultMinConnections
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = int32(min(minConns, maxConns))
	config.MaxConnLifetime = pc.MaxLifetime
	config.MaxConnIdleTime = pc.MaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgConnected,
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns)
	return pool, nil
}
