// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"  // registers "duckdb"
	_ "github.com/jackc/pgx/v5/stdlib"  // registers "pgx"
	_ "github.com/microsoft/go-mssqldb" // registers "sqlserver"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/maximo-analytics/internal/config"
	"github.com/tomtom215/maximo-analytics/internal/logging"
)

const (
	// pingTimeout bounds the startup and readiness connectivity checks.
	pingTimeout = 10 * time.Second

	// defaultQueryTimeout applies when the caller's context has no deadline.
	defaultQueryTimeout = 30 * time.Second
)

// DB is the record store adapter. It wraps a pooled database/sql handle and
// is safe for concurrent use.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	driver  string
	dialect Dialect
	breaker *gobreaker.CircuitBreaker[[]Row]
	closed  atomic.Bool
}

// New opens the record store described by cfg.
//
// A failed startup ping is logged and tolerated: the process stays up and
// every request reports the store failure until connectivity returns.
// Errors from New itself mean the configuration cannot be used at all.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config is nil")
	}
	driver := cfg.EffectiveDriver()
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driverName(driver), dataSourceName(driver, cfg.URL))
	if err != nil {
		return nil, asStoreError("open", driver, err)
	}
	configureConnectionPool(conn, cfg)

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		driver:  driver,
		dialect: dialect,
	}
	if cfg.CircuitBreaker {
		db.breaker = newCircuitBreaker(driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		logging.Warn().
			Err(err).
			Str("driver", driver).
			Str("url", config.RedactURL(cfg.URL)).
			Msg("Record store not reachable at startup, queries will fail until it recovers")
	} else {
		logging.Info().
			Str("driver", driver).
			Str("url", config.RedactURL(cfg.URL)).
			Int("max_open_conns", cfg.MaxOpenConns).
			Msg("Record store connected")
	}

	return db, nil
}

// Ping verifies connectivity to the store.
func (db *DB) Ping(ctx context.Context) error {
	if db.closed.Load() {
		return asStoreError("ping", db.driver, ErrClosed)
	}
	ctx, cancel := ensureContext(ctx, pingTimeout)
	defer cancel()
	if err := db.conn.PingContext(ctx); err != nil {
		return asStoreError("ping", db.driver, err)
	}
	return nil
}

// Stats returns connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.conn.Stats()
}

// Driver returns the resolved driver name (duckdb, postgres or sqlserver).
func (db *DB) Driver() string {
	return db.driver
}

// Dialect returns the SQL dialect of the store.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Close closes the connection pool. It is safe to call more than once.
func (db *DB) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return nil
	}
	logging.Info().Str("driver", db.driver).Msg("Closing record store")
	return db.conn.Close()
}

// ensureContext applies fallback when ctx carries no deadline.
func ensureContext(ctx context.Context, fallback time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, fallback)
}
