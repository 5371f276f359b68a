// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package api provides the HTTP REST API layer for Maximo Analytics.

Every analytics query in the catalog is exposed as one read-only GET route
under /api/maximo, for BI tools (Power BI, Tableau, Excel) that pull the
results on a schedule.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for catalog queries and health probes
  - ChiMiddleware: CORS and per-IP rate limiting from the chi ecosystem
  - Response helpers: JSON encoding with goccy/go-json, log-safe errors

Routes:

	GET /api/maximo                          catalog listing
	GET /api/maximo/assets                   all asset columns
	GET /api/maximo/top_maintained_assets    top 5 by work order count
	GET /api/maximo/avg_time_between_failures
	GET /api/maximo/high_cost_assets
	GET /api/maximo/no_maintenance_last_year
	GET /api/maximo/top_technicians
	GET /api/maximo/last_maintenance_status
	GET /api/maximo/total_downtime_last_month
	GET /api/maximo/long_duration_workorders
	GET /api/maximo/costly_maintenance_assets
	GET /api/maximo/maintenance_by_weekday
	GET /health/live                         always 200
	GET /health/ready                        200 when the store answers a ping, else 503
	GET /metrics                             Prometheus exposition

Response Format:

A successful query returns 200 with a bare JSON array, never null:

	[{"assetnum":"AST-1001","total_maintenance_cost":12000}]

Response headers carry X-Row-Count, X-Query-Duration-Ms and
Cache-Control: no-store. Failures return a single error object:

	{"error":"high_cost_assets: store query failed: connection refused"}

Status codes:

  - 200 OK: query succeeded, possibly with an empty array
  - 404 Not Found: no catalog entry or route with that name
  - 405 Method Not Allowed: anything but GET or HEAD (CORS preflight excepted)
  - 429 Too Many Requests: per-IP rate limit exceeded
  - 500 Internal Server Error: the store failed or returned unmappable rows
  - 503 Service Unavailable: readiness probe when the store is down

Middleware Stack (in order):

 1. Request ID (X-Request-ID, propagated into logging.Ctx)
 2. Request logging
 3. RealIP
 4. Panic recovery
 5. CORS
 6. Rate limiting, security headers, Prometheus metrics and gzip on /api/maximo

There is no authentication. Deploy behind a network boundary or a reverse
proxy that authenticates.

Thread Safety:

Handlers hold no per-request state and are safe for concurrent use. Each
request runs its own query against the pooled store connection.
*/
package api
