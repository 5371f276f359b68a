// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package config

import (
	"net/url"
	"strings"
)

// DetectDriver infers the store driver from a connection string.
// postgres:// and postgresql:// select PostgreSQL, sqlserver:// selects
// SQL Server, and anything else is treated as a DuckDB file path or ":memory:".
func DetectDriver(rawURL string) string {
	lower := strings.ToLower(strings.TrimSpace(rawURL))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "sqlserver://"):
		return DriverSQLServer
	default:
		return DriverDuckDB
	}
}

// RedactURL masks the password of a URL-style connection string so it can be
// logged. Non-URL strings (DuckDB paths) are returned unchanged.
func RedactURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable connection string>"
	}
	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
		}
	}
	q := parsed.Query()
	if q.Has("password") {
		q.Set("password", "xxxxx")
		parsed.RawQuery = q.Encode()
	}
	return parsed.String()
}
