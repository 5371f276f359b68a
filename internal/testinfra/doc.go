// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

// Package testinfra provides container helpers for integration tests.
//
// Unit tests run the analytics catalog against in-memory DuckDB. The
// integration suite (build tag integration) runs the same catalog against a
// real PostgreSQL server started with testcontainers-go, so the postgres
// dialect's SQL is exercised end to end:
//
//	func TestCatalog_Postgres(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//	    // database.New(&config.DatabaseConfig{URL: pg.URL, ...})
//	}
//
// Run with:
//
//	go test -tags integration ./...
//
// Tests are skipped when Docker is not available. The first run pulls the
// PostgreSQL image.
package testinfra
