package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

const applicationName = "openhours"

// PoolConfig bounds the database/sql pool that backs busy period storage.
// Zero values leave the database/sql defaults in place.
type PoolConfig struct {
	// MaxOpenConns caps concurrent connections. Every availability request
	// holds at most one, so this is also the ceiling on in-flight store reads.
	MaxOpenConns int
	// MaxIdleConns is clamped to MaxOpenConns.
	MaxIdleConns int
	// ConnMaxLifetime recycles connections so failovers and PgBouncer
	// restarts are picked up without a process restart.
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (p PoolConfig) apply(db *sql.DB) {
	if p.MaxOpenConns > 0 {
		db.SetMaxOpenConns(p.MaxOpenConns)
	}
	if idle := p.maxIdle(); idle > 0 {
		db.SetMaxIdleConns(idle)
	}
	if p.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(p.ConnMaxLifetime)
	}
	if p.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(p.ConnMaxIdleTime)
	}
}

func (p PoolConfig) maxIdle() int {
	if p.MaxOpenConns > 0 && p.MaxIdleConns > p.MaxOpenConns {
		return p.MaxOpenConns
	}
	return p.MaxIdleConns
}

// connConfig parses databaseURL and tags the session with the service's
// application_name unless the URL already sets one.
func connConfig(databaseURL string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	if _, ok := cfg.RuntimeParams["application_name"]; !ok {
		cfg.RuntimeParams["application_name"] = applicationName
	}
	return cfg, nil
}

// Open connects to Postgres through the pgx stdlib driver and wraps the pool
// in bun. The connection is verified with a ping before returning.
func Open(ctx context.Context, databaseURL string, pool PoolConfig) (*bun.DB, error) {
	cfg, err := connConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDB(*cfg)
	pool.apply(sqlDB)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

func Close(db *bun.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
