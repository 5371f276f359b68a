// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/config"
	"github.com/tomtom215/maximo-analytics/internal/logging"
	"github.com/tomtom215/maximo-analytics/internal/models"
)

// The upstream maintenance system owns the schema in production. These
// statements exist for local development and tests only.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS assets (
		assetnum VARCHAR(64) PRIMARY KEY,
		description VARCHAR(256),
		location VARCHAR(64),
		status VARCHAR(32),
		changedate TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workorders (
		workorderid BIGINT PRIMARY KEY,
		assetnum VARCHAR(64),
		maintenance_date TIMESTAMP,
		status VARCHAR(32),
		cost DECIMAL(12,2),
		duration DOUBLE PRECISION,
		technician_id VARCHAR(64),
		changedate TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS downtime (
		assetnum VARCHAR(64),
		start_time TIMESTAMP,
		end_time TIMESTAMP
	)`,
}

// Fixture is a set of base records loaded by LoadFixture.
type Fixture struct {
	Assets     []models.Asset
	WorkOrders []models.WorkOrder
	Downtime   []models.DowntimeEvent
}

// supportsSchema reports whether CreateSchema can run on this driver.
func (db *DB) supportsSchema() error {
	switch db.driver {
	case config.DriverDuckDB, config.DriverPostgres:
		return nil
	default:
		return fmt.Errorf("schema management is not supported for driver %q", db.driver)
	}
}

// CreateSchema creates the assets, workorders and downtime tables if they do not exist.
func (db *DB) CreateSchema(ctx context.Context) error {
	if err := db.supportsSchema(); err != nil {
		return err
	}
	ctx, cancel := ensureContext(ctx, defaultQueryTimeout)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return asStoreError("schema", db.driver, err)
		}
	}
	return nil
}

// LoadFixture inserts f in a single transaction. Empty strings and zero
// times are stored as NULL.
func (db *DB) LoadFixture(ctx context.Context, f Fixture) (err error) {
	if err := db.supportsSchema(); err != nil {
		return err
	}
	ctx, cancel := ensureContext(ctx, defaultQueryTimeout)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return asStoreError("begin", db.driver, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, a := range f.Assets {
		if _, err = tx.ExecContext(ctx, db.insertSQL("assets", 5),
			a.AssetNum, nullString(a.Description), nullString(a.Location), nullString(a.Status), nullTime(a.ChangeDate),
		); err != nil {
			return asStoreError("insert", db.driver, fmt.Errorf("asset %s: %w", a.AssetNum, err))
		}
	}
	for _, w := range f.WorkOrders {
		if _, err = tx.ExecContext(ctx, db.insertSQL("workorders", 8),
			w.WorkOrderID, nullString(w.AssetNum), nullTime(w.MaintenanceDate), nullString(w.Status),
			w.Cost.InexactFloat64(), w.Duration, nullString(w.TechnicianID), nullTime(w.ChangeDate),
		); err != nil {
			return asStoreError("insert", db.driver, fmt.Errorf("work order %d: %w", w.WorkOrderID, err))
		}
	}
	for _, d := range f.Downtime {
		if _, err = tx.ExecContext(ctx, db.insertSQL("downtime", 3),
			nullString(d.AssetNum), nullTime(d.StartTime), nullTime(d.EndTime),
		); err != nil {
			return asStoreError("insert", db.driver, fmt.Errorf("downtime for %s: %w", d.AssetNum, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return asStoreError("commit", db.driver, err)
	}
	return nil
}

// insertSQL builds a positional INSERT for the columns of table in schema order.
func (db *DB) insertSQL(table string, n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = db.dialect.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, strings.Join(placeholders, ", "))
}

// SeedDemoData creates the schema and fills it with a reproducible demo
// dataset anchored at now. Existing rows are left untouched when the
// assets table is already populated.
func (db *DB) SeedDemoData(ctx context.Context, now time.Time) error {
	if err := db.CreateSchema(ctx); err != nil {
		return err
	}

	rows, err := db.Query(ctx, "SELECT COUNT(*) AS n FROM assets")
	if err != nil {
		return err
	}
	if len(rows) == 1 {
		if v, _ := rows[0].Get("n"); v != nil {
			if n, cerr := AsInt64(v); cerr == nil && n > 0 {
				logging.Info().Int64("assets", n).Msg("Demo data already present, skipping seed")
				return nil
			}
		}
	}

	fixture := DemoFixture(now)
	if err := db.LoadFixture(ctx, fixture); err != nil {
		return err
	}
	logging.Info().
		Int("assets", len(fixture.Assets)).
		Int("workorders", len(fixture.WorkOrders)).
		Int("downtime_events", len(fixture.Downtime)).
		Msg("Seeded demo data")
	return nil
}

// DemoFixture generates the demo dataset. The same now always yields the
// same records.
func DemoFixture(now time.Time) Fixture {
	now = now.UTC().Truncate(time.Second)
	rng := rand.New(rand.NewPCG(20240501, 7))

	locations := []string{"PLANT-A", "PLANT-B", "WAREHOUSE", "PUMPHOUSE"}
	kinds := []string{"Centrifugal pump", "Air compressor", "Conveyor belt", "HVAC unit", "Boiler", "Forklift"}
	technicians := []string{"T100", "T101", "T102", "T103", "T104", "T105", "T106"}
	statuses := []string{models.WorkOrderStatusCompleted, models.WorkOrderStatusCompleted, models.WorkOrderStatusCompleted, "In Progress", "Waiting"}

	var f Fixture
	const assetCount = 24
	for i := 1; i <= assetCount; i++ {
		f.Assets = append(f.Assets, models.Asset{
			AssetNum:    fmt.Sprintf("AST-%04d", 1000+i),
			Description: fmt.Sprintf("%s #%d", kinds[rng.IntN(len(kinds))], i),
			Location:    locations[rng.IntN(len(locations))],
			Status:      "OPERATING",
			ChangeDate:  now.Add(-time.Duration(rng.IntN(90*24)) * time.Hour),
		})
	}

	// The last four assets get no work orders at all, and the four before
	// them only get work older than a year.
	id := int64(50000)
	for i, a := range f.Assets {
		if i >= assetCount-4 {
			break
		}
		stale := i >= assetCount-8
		orders := 3 + rng.IntN(18)
		for j := 0; j < orders; j++ {
			ageDays := rng.IntN(720)
			if stale {
				ageDays = 400 + rng.IntN(300)
			}
			date := now.Add(-time.Duration(ageDays)*24*time.Hour - time.Duration(rng.IntN(24))*time.Hour)
			cents := int64(5000 + rng.IntN(450000))
			id++
			f.WorkOrders = append(f.WorkOrders, models.WorkOrder{
				WorkOrderID:     id,
				AssetNum:        a.AssetNum,
				MaintenanceDate: date,
				Status:          statuses[rng.IntN(len(statuses))],
				Cost:            models.MustParseAmount(fmt.Sprintf("%d.%02d", cents/100, cents%100)),
				Duration:        float64(1+rng.IntN(32)) / 2,
				TechnicianID:    technicians[rng.IntN(len(technicians))],
				ChangeDate:      date.Add(time.Duration(1+rng.IntN(48)) * time.Hour),
			})
		}
	}

	for i := 0; i < 60; i++ {
		a := f.Assets[rng.IntN(assetCount)]
		start := now.Add(-time.Duration(rng.IntN(60*24)) * time.Hour)
		f.Downtime = append(f.Downtime, models.DowntimeEvent{
			AssetNum:  a.AssetNum,
			StartTime: start,
			EndTime:   start.Add(time.Duration(15+rng.IntN(72*60)) * time.Minute),
		})
	}
	return f
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t.UTC(), Valid: !t.IsZero()}
}
