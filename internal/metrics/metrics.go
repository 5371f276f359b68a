// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of record store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of record store query errors",
		},
		[]string{"driver", "error_type"},
	)

	StorePoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_pool_connections",
			Help: "Connections in the store pool by state (open, in_use, idle)",
		},
		[]string{"state"},
	)

	StorePoolWaits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_pool_wait_total",
			Help: "Cumulative number of waits for a free store connection",
		},
	)

	// Catalog Metrics
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "End-to-end duration of catalog queries including decoding",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"query"},
	)

	CatalogQueryRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_rows",
			Help:    "Number of rows returned by catalog queries",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
		[]string{"query"},
	)

	CatalogQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_errors_total",
			Help: "Total number of failed catalog queries by error kind",
		},
		[]string{"query", "kind"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
		func() float64 { return time.Since(processStart).Seconds() },
	)
)

// processStart is taken when the package initializes.
var processStart = time.Now()

// RecordStoreQuery records one statement executed against the record store.
// errorType is empty on success.
func RecordStoreQuery(driver string, duration time.Duration, errorType string) {
	StoreQueryDuration.WithLabelValues(driver).Observe(duration.Seconds())
	if errorType != "" {
		StoreQueryErrors.WithLabelValues(driver, errorType).Inc()
	}
}

// RecordCatalogQuery records a catalog query execution. kind is empty on success.
func RecordCatalogQuery(query string, duration time.Duration, rows int, kind string) {
	CatalogQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if kind != "" {
		CatalogQueryErrors.WithLabelValues(query, kind).Inc()
		return
	}
	CatalogQueryRows.WithLabelValues(query).Observe(float64(rows))
}

// RecordPoolStats publishes a database/sql pool snapshot.
func RecordPoolStats(stats sql.DBStats) {
	StorePoolConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	StorePoolConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	StorePoolConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	StorePoolWaits.Set(float64(stats.WaitCount))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
