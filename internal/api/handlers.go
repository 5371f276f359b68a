// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package api

import (
	"context"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/query"
)

// StoreProbe is the part of the record store the health probes need.
// *database.DB satisfies it.
type StoreProbe interface {
	Ping(ctx context.Context) error
	Driver() string
	BreakerState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON and error response helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_maximo.go: catalog query endpoints
type Handler struct {
	service   *query.Service
	store     StoreProbe
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - service: executes catalog queries
//   - store: pinged by the readiness probe
//   - version: reported by the health endpoints
func NewHandler(service *query.Service, store StoreProbe, version string) *Handler {
	return &Handler{
		service:   service,
		store:     store,
		version:   version,
		startTime: time.Now(),
	}
}
