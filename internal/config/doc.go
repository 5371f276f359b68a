// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package config provides configuration loading for Maximo Analytics.

Configuration is layered with koanf, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/maximo-analytics/config.yaml)
 3. Optional .env file (ENV_FILE, default .env), loaded into the process
    environment without overriding variables that are already set
 4. Process environment variables

Only environment variables listed in envMappings are read; anything else in the
environment is ignored.

# Environment Variables

Store:
  - MAXIMO_DATABASE_URI: connection string (required). postgres://... and
    sqlserver://... select those drivers; anything else is a DuckDB path.
  - DATABASE_DRIVER: duckdb, postgres or sqlserver (overrides detection)
  - DATABASE_MAX_OPEN_CONNS, DATABASE_MAX_IDLE_CONNS
  - DATABASE_CONN_MAX_LIFETIME, DATABASE_CONN_MAX_IDLE_TIME
  - DATABASE_CIRCUIT_BREAKER: fail fast while the store keeps failing (default: false)
  - DATABASE_SEED_DEMO_DATA: create and fill demo tables, DuckDB only (default: false)

Queries:
  - QUERY_TIMEOUT: bounded execution time per catalog query (default: 30s)

HTTP:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 5000)
  - HTTP_TIMEOUT: server read/write timeout, must exceed QUERY_TIMEOUT (default: 60s)
  - ENVIRONMENT: development, staging, production (default: production)
  - CORS_ORIGINS: comma separated (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Observability:
  - POOL_STATS_INTERVAL: connection pool gauge refresh (default: 15s)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
