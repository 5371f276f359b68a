// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

// Package database is the record store adapter for Maximo Analytics.
//
// It opens one pooled database/sql handle against the Maximo store and runs
// parameterized read queries, returning every result row as an ordered Row
// (column name to value). Three drivers are supported, each paired with a
// Dialect that supplies the few SQL fragments that differ between engines:
//
//   - duckdb: github.com/duckdb/duckdb-go/v2 (local files, demo data, tests)
//   - postgres: github.com/jackc/pgx/v5/stdlib
//   - sqlserver: github.com/microsoft/go-mssqldb
//
// # Failure model
//
// Query either returns every row or none. Connectivity failures, malformed
// SQL, scan failures and an open circuit breaker are all reported as
// *StoreError. Nothing is retried here; the caller decides.
//
// Rows are always closed before Query returns, including on error, so a
// failing query never holds a pooled connection.
//
// # Organization
//
//   - database.go: lifecycle (New, Ping, Stats, Close)
//   - database_connection.go: driver registration names, pool settings
//   - dialect.go: per-engine SQL fragments
//   - query.go: Query, value normalization
//   - row.go: Row and its ordered JSON encoding
//   - coerce.go: typed accessors used by result decoders
//   - circuit_breaker.go: optional gobreaker guard
//   - errors.go: StoreError, error classification
//   - seed.go: demo schema, fixtures and demo data (duckdb, postgres)
package database
