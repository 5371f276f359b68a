// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package metrics provides Prometheus collectors for Maximo Analytics.

Collectors are registered on the default registry through promauto and exposed
by the API at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

Store:
  - store_query_duration_seconds{driver}
  - store_query_errors_total{driver, error_type}
  - store_pool_connections{state}: open, in_use, idle
  - store_pool_wait_total: cumulative waits for a free connection

Catalog:
  - catalog_query_duration_seconds{query}
  - catalog_query_rows{query}
  - catalog_query_errors_total{query, kind}

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Circuit breaker:
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Process:
  - app_info{version, go_version}
  - app_uptime_seconds
*/
package metrics
