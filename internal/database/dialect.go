// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"fmt"

	"github.com/tomtom215/maximo-analytics/internal/config"
)

// Dialect supplies the SQL fragments that differ between supported engines.
// Everything else in the analytics catalog is portable SQL.
type Dialect interface {
	// Name is the driver name from config (duckdb, postgres, sqlserver).
	Name() string

	// Placeholder returns the bind marker for the n-th (1-based) argument.
	Placeholder(n int) string

	// SecondsBetween returns an expression for (to - from) in fractional seconds
	// as a double precision value. Negative when to precedes from.
	SecondsBetween(from, to string) string

	// WeekdayName returns an expression for the English weekday name of a timestamp.
	WeekdayName(expr string) string

	// Limit returns the clause that caps the row count. It is appended after ORDER BY.
	Limit(n int) string
}

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverDuckDB:
		return duckDBDialect{}, nil
	case config.DriverPostgres:
		return postgresDialect{}, nil
	case config.DriverSQLServer:
		return sqlServerDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type duckDBDialect struct{}

func (duckDBDialect) Name() string { return config.DriverDuckDB }

func (duckDBDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (duckDBDialect) SecondsBetween(from, to string) string {
	return fmt.Sprintf("CAST(epoch_us(%s) - epoch_us(%s) AS DOUBLE) / 1000000.0", to, from)
}

func (duckDBDialect) WeekdayName(expr string) string {
	return fmt.Sprintf("dayname(%s)", expr)
}

func (duckDBDialect) Limit(n int) string { return fmt.Sprintf("LIMIT %d", n) }

type postgresDialect struct{}

func (postgresDialect) Name() string { return config.DriverPostgres }

func (postgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (postgresDialect) SecondsBetween(from, to string) string {
	return fmt.Sprintf("CAST(EXTRACT(EPOCH FROM (%s - %s)) AS DOUBLE PRECISION)", to, from)
}

// WeekdayName uses the FM modifier so names are not blank-padded to nine characters.
func (postgresDialect) WeekdayName(expr string) string {
	return fmt.Sprintf("TO_CHAR(%s, 'FMDay')", expr)
}

func (postgresDialect) Limit(n int) string { return fmt.Sprintf("LIMIT %d", n) }

type sqlServerDialect struct{}

func (sqlServerDialect) Name() string { return config.DriverSQLServer }

func (sqlServerDialect) Placeholder(n int) string { return fmt.Sprintf("@p%d", n) }

func (sqlServerDialect) SecondsBetween(from, to string) string {
	return fmt.Sprintf("CAST(DATEDIFF_BIG(second, %s, %s) AS FLOAT)", from, to)
}

// WeekdayName depends on the session language; Maximo installations run us_english.
func (sqlServerDialect) WeekdayName(expr string) string {
	return fmt.Sprintf("DATENAME(weekday, %s)", expr)
}

func (sqlServerDialect) Limit(n int) string {
	return fmt.Sprintf("OFFSET 0 ROWS FETCH NEXT %d ROWS ONLY", n)
}
