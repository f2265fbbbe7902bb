package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/logger"
	_ "github.com/lib/pq"
)

// PoolOptions bounds the connection pool shared by all requests.
type PoolOptions struct {
	PoolSize    int
	ConnMaxIdle time.Duration
}

// ConnectDB opens a bounded Postgres pool and verifies it is reachable.
func ConnectDB(ctx context.Context, dsn string, opts PoolOptions) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if opts.PoolSize <= 0 {
		opts.PoolSize = 5
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	Configure(db, opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database not reachable: %w", err)
	}

	logger.Infof("Connected to PostgreSQL (pool size %d)", opts.PoolSize)
	return db, nil
}

// Configure applies pool bounds to an open handle.
func Configure(db *sql.DB, opts PoolOptions) {
	db.SetMaxOpenConns(opts.PoolSize)
	db.SetMaxIdleConns(opts.PoolSize)
	if opts.ConnMaxIdle > 0 {
		db.SetConnMaxIdleTime(opts.ConnMaxIdle)
	}
}
