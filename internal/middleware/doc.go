// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and puts it on the
    request context for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labelled by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

The middleware uses net/http signatures and is adapted to chi in the api
package:

	r.Use(middleware.RequestID)
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Thread Safety:

All middleware is safe for concurrent use. The gzip writer pool is a sync.Pool.
*/
package middleware
