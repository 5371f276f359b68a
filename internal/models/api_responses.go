// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package models

import (
	"time"
)

// ErrorResponse is the body of every non-2xx response from /api/maximo.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CatalogEntryInfo describes one analytics endpoint in the catalog listing.
type CatalogEntryInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Path        string   `json:"path"`
	Tables      []string `json:"tables"`
	Columns     []string `json:"columns,omitempty"` // empty when the store defines the columns
}

// HealthResponse reports liveness and store readiness.
type HealthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Driver        string    `json:"driver,omitempty"`
	StoreOK       bool      `json:"store_ok"`
	Breaker       string    `json:"circuit_breaker,omitempty"` // closed, half-open, open or disabled
	Uptime        float64   `json:"uptime_seconds"`
	LastCheckTime time.Time `json:"last_check_time"`
	Error         string    `json:"error,omitempty"`
}
