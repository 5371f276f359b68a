// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package config

import (
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Query    QueryConfig    `koanf:"query"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Supported store drivers.
const (
	DriverDuckDB    = "duckdb"
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
)

// DatabaseConfig holds the record store connection settings
type DatabaseConfig struct {
	// URL is the single connection string for the Maximo store (MAXIMO_DATABASE_URI).
	URL string `koanf:"url" validate:"required"`

	// Driver selects the database/sql driver and SQL dialect. Empty means
	// detect from URL (see DetectDriver).
	Driver string `koanf:"driver" validate:"omitempty,oneof=duckdb postgres sqlserver"`

	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`

	CircuitBreaker bool `koanf:"circuit_breaker"` // Fail fast while the store keeps failing
	SeedDemoData   bool `koanf:"seed_demo_data"`  // Create and fill demo tables (duckdb only)
}

// EffectiveDriver returns the configured driver, or the one detected from URL.
func (c *DatabaseConfig) EffectiveDriver() string {
	if c.Driver != "" {
		return c.Driver
	}
	return DetectDriver(c.URL)
}

// QueryConfig holds catalog query execution settings
type QueryConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port" validate:"min=1,max=65535"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	Environment string        `koanf:"environment" validate:"oneof=development staging production"`
}

// IsProduction reports whether the server runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// SecurityConfig holds transport-level protections. There is no authentication
// layer; BI clients pull anonymously.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// MetricsConfig holds Prometheus collection settings
type MetricsConfig struct {
	PoolStatsInterval time.Duration `koanf:"pool_stats_interval" validate:"gt=0"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, config file, .env file and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
