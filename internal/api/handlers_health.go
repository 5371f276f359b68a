// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/logging"
	"github.com/tomtom215/maximo-analytics/internal/models"
)

// readyTimeout bounds the store ping behind /health/ready.
const readyTimeout = 5 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of the store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.HealthResponse{
		Status:        "alive",
		Version:       h.version,
		Uptime:        time.Since(h.startTime).Seconds(),
		LastCheckTime: time.Now().UTC(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when the record store answers a ping, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	resp := &models.HealthResponse{
		Status:  "ready",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if h.store == nil {
		resp.Status = "not_ready"
		resp.Error = "record store not configured"
		resp.LastCheckTime = time.Now().UTC()
		respondJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Driver = h.store.Driver()
	resp.Breaker = h.store.BreakerState()

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	err := h.store.Ping(ctx)
	resp.LastCheckTime = time.Now().UTC()
	if err != nil {
		resp.Status = "not_ready"
		resp.Error = err.Error()
		logging.CtxErr(r.Context(), err).
			Str("driver", resp.Driver).
			Msg("Readiness check failed")
		respondJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	resp.StoreOK = true
	respondJSON(w, r, http.StatusOK, resp)
}
