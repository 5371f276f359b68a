// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tomtom215/maximo-analytics/internal/config"
	"github.com/tomtom215/maximo-analytics/internal/database"
	"github.com/tomtom215/maximo-analytics/internal/models"
)

// testNow is a Wednesday.
var testNow = time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

var testDBSemaphore = make(chan struct{}, 2)

func setupTestDB(t *testing.T, fixture database.Fixture) *database.DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := database.New(&config.DatabaseConfig{URL: ":memory:", MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	if err := db.CreateSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.LoadFixture(ctx, fixture); err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return db
}

func testClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(testNow)
}

// run executes one catalog entry the way the query service does.
func run(t *testing.T, db *database.DB, name string, now time.Time) any {
	t.Helper()
	entry, ok := NewCatalog().Lookup(name)
	if !ok {
		t.Fatalf("entry %q not registered", name)
	}
	stmt := entry.Statement(db.Dialect(), NewWindow(now))
	rows, err := db.Query(context.Background(), stmt.SQL, stmt.Args...)
	if err != nil {
		t.Fatalf("%s: query failed: %v\nSQL:\n%s", name, err, stmt.SQL)
	}
	result, err := entry.Decode(rows)
	if err != nil {
		t.Fatalf("%s: decode failed: %v", name, err)
	}
	return result
}

func runAs[T any](t *testing.T, db *database.DB, name string, now time.Time) []T {
	t.Helper()
	result := run(t, db, name, now)
	typed, ok := result.([]T)
	if !ok {
		t.Fatalf("%s: result is %T", name, result)
	}
	return typed
}

func assets(nums ...string) []models.Asset {
	out := make([]models.Asset, len(nums))
	for i, n := range nums {
		out[i] = models.Asset{AssetNum: n, Description: "Asset " + n}
	}
	return out
}

// workOrder builds a completed work order dated daysAgo before testNow.
func workOrder(id int64, asset string, daysAgo float64, cost string) models.WorkOrder {
	return models.WorkOrder{
		WorkOrderID:     id,
		AssetNum:        asset,
		MaintenanceDate: testNow.Add(-time.Duration(daysAgo * float64(24*time.Hour))),
		Status:          models.WorkOrderStatusCompleted,
		Cost:            models.MustParseAmount(cost),
		Duration:        1,
		TechnicianID:    "T1",
	}
}

func assertEqual[T comparable](t *testing.T, field string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}
