// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package config

import (
	"fmt"

	"github.com/tomtom215/maximo-analytics/internal/validation"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	return c.validateServer()
}

// validateDatabase checks cross-field store settings
func (c *Config) validateDatabase() error {
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DATABASE_MAX_IDLE_CONNS (%d) must not exceed DATABASE_MAX_OPEN_CONNS (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.Database.ConnMaxLifetime < 0 || c.Database.ConnMaxIdleTime < 0 {
		return fmt.Errorf("DATABASE_CONN_MAX_LIFETIME and DATABASE_CONN_MAX_IDLE_TIME must not be negative")
	}

	if c.Database.SeedDemoData && c.Database.EffectiveDriver() != DriverDuckDB {
		return fmt.Errorf("DATABASE_SEED_DEMO_DATA is only supported with the duckdb driver, got %s",
			c.Database.EffectiveDriver())
	}

	return nil
}

// validateServer checks that the HTTP timeout leaves room for a full query
func (c *Config) validateServer() error {
	if c.Server.Timeout <= c.Query.Timeout {
		return fmt.Errorf("HTTP_TIMEOUT (%s) must be greater than QUERY_TIMEOUT (%s)",
			c.Server.Timeout, c.Query.Timeout)
	}
	return nil
}
