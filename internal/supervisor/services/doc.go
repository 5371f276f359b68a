// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package services provides suture.Service wrappers for long-running components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name it in log events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, translating ListenAndServe into Serve
  - Graceful Shutdown with a bounded timeout on context cancellation
  - http.ErrServerClosed is not treated as a failure

Pool Stats (PoolStatsService):
  - Publishes database/sql pool statistics to Prometheus on a ticker
  - Satisfied by *database.DB via the StatsSource interface
*/
package services
