// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

// Package analytics defines the catalog of maintenance analytics.
//
// Each Entry is a named, read-only computation over the assets, workorders
// and downtime tables. An entry renders one SQL statement for a store
// dialect and a time Window, and decodes the resulting rows into its typed
// output schema from internal/models. Entries hold no state; the same store
// contents and the same Window always produce the same rows in the same order.
//
// # Ordering
//
// Every statement has a total ORDER BY. Ranked entries break ties on their
// grouping key ascending (assetnum, technician_id or day_of_week), so LIMIT
// never picks between equal rows arbitrarily.
//
// # Time windows
//
// Trailing windows are closed intervals [cutoff, now] bound as parameters,
// with now taken from an injectable clock by the caller:
//
//   - no_maintenance_last_year: now - 365 days
//   - total_downtime_last_month: now - 30 days
//   - costly_maintenance_assets: now minus six calendar months
//
// # Nulls
//
// Rows with a NULL grouping key (assetnum or technician_id) are left out of
// per-asset and per-technician aggregates. Downtime events without an
// end_time are still open and are not counted.
//
// Usage:
//
//	catalog := analytics.NewCatalog()
//	entry, ok := catalog.Lookup("high_cost_assets")
//	stmt := entry.Statement(db.Dialect(), analytics.NewWindow(time.Now()))
//	rows, err := db.Query(ctx, stmt.SQL, stmt.Args...)
//	result, err := entry.Decode(rows)
package analytics
