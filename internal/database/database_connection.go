// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"database/sql"
	"strings"

	"github.com/tomtom215/maximo-analytics/internal/config"
)

// driverName maps a configured driver to its database/sql registration name.
func driverName(driver string) string {
	switch driver {
	case config.DriverPostgres:
		return "pgx"
	case config.DriverSQLServer:
		return "sqlserver"
	default:
		return "duckdb"
	}
}

// dataSourceName adapts the configured URL for the driver. DuckDB takes a
// file path, with an empty path meaning an in-memory database.
func dataSourceName(driver, rawURL string) string {
	dsn := strings.TrimSpace(rawURL)
	if driver != config.DriverDuckDB {
		return dsn
	}
	dsn = strings.TrimPrefix(dsn, "duckdb://")
	if dsn == ":memory:" {
		return ""
	}
	return dsn
}

// configureConnectionPool applies pool limits. Every connection from a DuckDB
// pool shares the same database instance, in memory or on disk.
func configureConnectionPool(conn *sql.DB, cfg *config.DatabaseConfig) {
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 4
	}
	conn.SetMaxOpenConns(maxOpen)

	idle := cfg.MaxIdleConns
	if idle > maxOpen {
		idle = maxOpen
	}
	conn.SetMaxIdleConns(idle)

	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}
