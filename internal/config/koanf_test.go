// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolateWorkdir moves the test into an empty directory so no stray
// config.yaml or .env file is picked up.
func isolateWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.URL != "" {
		t.Errorf("Database.URL should be empty by default, got %q", cfg.Database.URL)
	}
	if cfg.Database.MaxOpenConns < 4 {
		t.Errorf("Database.MaxOpenConns = %d, want >= 4", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns != 2 {
		t.Errorf("Database.MaxIdleConns = %d, want 2", cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime != time.Hour {
		t.Errorf("Database.ConnMaxLifetime = %v, want 1h", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Query.Timeout != 30*time.Second {
		t.Errorf("Query.Timeout = %v, want 30s", cfg.Query.Timeout)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Timeout <= cfg.Query.Timeout {
		t.Errorf("Server.Timeout %v must exceed Query.Timeout %v", cfg.Server.Timeout, cfg.Query.Timeout)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"MAXIMO_DATABASE_URI", "database.url"},
		{"DATABASE_DRIVER", "database.driver"},
		{"QUERY_TIMEOUT", "query.timeout"},
		{"HTTP_PORT", "server.port"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanf_EnvOnly(t *testing.T) {
	isolateWorkdir(t)
	cleanup := setupTestEnv(t, map[string]string{
		"MAXIMO_DATABASE_URI": "postgres://bi:secret@db:5432/maximo",
		"QUERY_TIMEOUT":       "45s",
		"HTTP_PORT":           "8080",
		"CORS_ORIGINS":        "https://bi.example.com, https://reports.example.com",
		"LOG_LEVEL":           "debug",
	})
	defer cleanup()

	cfg, err := LoadWithKoanf()
	assertNoError(t, err, "LoadWithKoanf")

	assertStringEqual(t, cfg.Database.URL, "postgres://bi:secret@db:5432/maximo", "Database.URL")
	assertStringEqual(t, cfg.Database.EffectiveDriver(), DriverPostgres, "EffectiveDriver")
	assertIntEqual(t, cfg.Server.Port, 8080, "Server.Port", "LoadWithKoanf")
	assertStringEqual(t, cfg.Logging.Level, "debug", "Logging.Level")
	if cfg.Query.Timeout != 45*time.Second {
		t.Errorf("Query.Timeout = %v, want 45s", cfg.Query.Timeout)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://reports.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_MissingURL(t *testing.T) {
	isolateWorkdir(t)
	cleanup := setupTestEnv(t, nil)
	defer cleanup()

	_, err := LoadWithKoanf()
	assertErrorContains(t, err, "database.url is required")
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolateWorkdir(t)
	path := filepath.Join(dir, "maximo.yaml")
	writeFile(t, path, `
database:
  url: /data/maximo.duckdb
  seed_demo_data: true
server:
  port: 9000
  environment: development
security:
  cors_origins:
    - https://bi.example.com
`)
	cleanup := setupTestEnv(t, map[string]string{
		ConfigPathEnvVar: path,
		"HTTP_PORT":      "9100",
	})
	defer cleanup()

	cfg, err := LoadWithKoanf()
	assertNoError(t, err, "LoadWithKoanf")

	assertStringEqual(t, cfg.Database.URL, "/data/maximo.duckdb", "Database.URL")
	assertBoolEqual(t, cfg.Database.SeedDemoData, true, "Database.SeedDemoData")
	assertStringEqual(t, cfg.Server.Environment, "development", "Server.Environment")
	// Environment overrides file
	assertIntEqual(t, cfg.Server.Port, 9100, "Server.Port", "LoadWithKoanf")
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://bi.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_DotEnvFile(t *testing.T) {
	dir := isolateWorkdir(t)
	writeFile(t, filepath.Join(dir, ".env"), "MAXIMO_DATABASE_URI=sqlserver://sa:pw@mssql:1433?database=maximo\nHTTP_PORT=7000\n")

	cleanup := setupTestEnv(t, map[string]string{
		"HTTP_PORT": "7100",
	})
	defer cleanup()

	cfg, err := LoadWithKoanf()
	assertNoError(t, err, "LoadWithKoanf")

	assertStringEqual(t, cfg.Database.EffectiveDriver(), DriverSQLServer, "EffectiveDriver")
	// Process environment wins over .env
	assertIntEqual(t, cfg.Server.Port, 7100, "Server.Port", "LoadWithKoanf")
}

func TestLoadWithKoanf_ExplicitEnvFileMissing(t *testing.T) {
	isolateWorkdir(t)
	cleanup := setupTestEnv(t, map[string]string{
		EnvFileEnvVar:         "does-not-exist.env",
		"MAXIMO_DATABASE_URI": ":memory:",
	})
	defer cleanup()

	_, err := LoadWithKoanf()
	assertErrorContains(t, err, "failed to load env file")
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateWorkdir(t)
	cleanup := setupTestEnv(t, nil)
	defer cleanup()

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	writeFile(t, filepath.Join(dir, "config.yaml"), "server:\n  port: 5001\n")
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}
}
