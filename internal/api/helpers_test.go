// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"

	"github.com/tomtom215/maximo-analytics/internal/analytics"
	"github.com/tomtom215/maximo-analytics/internal/config"
	"github.com/tomtom215/maximo-analytics/internal/database"
	"github.com/tomtom215/maximo-analytics/internal/models"
	"github.com/tomtom215/maximo-analytics/internal/query"
)

var testNow = time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

const testVersion = "test"

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

// failingStore fails every query the way an unreachable store does.
type failingStore struct {
	err error
}

func (f *failingStore) Query(context.Context, string, ...any) ([]database.Row, error) {
	return nil, f.err
}

func (f *failingStore) Dialect() database.Dialect {
	d, _ := database.DialectFor(config.DriverDuckDB)
	return d
}

// probeStub is a StoreProbe with a canned ping result.
type probeStub struct {
	err     error
	breaker string
}

func (p *probeStub) Ping(context.Context) error { return p.err }
func (p *probeStub) Driver() string             { return config.DriverDuckDB }
func (p *probeStub) BreakerState() string {
	if p.breaker == "" {
		return "disabled"
	}
	return p.breaker
}

func errStoreDown() error {
	return &database.StoreError{
		Op:     "query",
		Driver: config.DriverPostgres,
		Err:    errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
	}
}

type serverOptions struct {
	security *config.SecurityConfig
	probe    StoreProbe
}

// newTestServer wires the full router over store with rate limiting off
// unless security overrides it.
func newTestServer(t *testing.T, store query.Store, opts serverOptions) http.Handler {
	t.Helper()

	svc := query.NewService(store, analytics.NewCatalog(),
		query.WithClock(clockwork.NewFakeClockAt(testNow)))

	probe := opts.probe
	if probe == nil {
		if db, ok := store.(*database.DB); ok {
			probe = db
		} else {
			probe = &probeStub{}
		}
	}

	security := opts.security
	if security == nil {
		security = &config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		}
	}

	handler := NewHandler(svc, probe, testVersion)
	return NewRouter(handler, NewChiMiddlewareFromConfig(security)).SetupChi()
}

func doGet(t *testing.T, h http.Handler, path string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, http.MethodGet, path, headers...)
}

func do(t *testing.T, h http.Handler, method, path string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	if len(headers)%2 != 0 {
		t.Fatalf("headers must be key/value pairs")
	}
	req := httptest.NewRequest(method, path, nil)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode body %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", ct)
	}
	body := decodeBody[models.ErrorResponse](t, rec)
	if body.Error == "" {
		t.Errorf("Expected non-empty error message, body: %s", rec.Body.String())
	}
	return body
}

func asset(num, desc string) models.Asset {
	return models.Asset{AssetNum: num, Description: desc, Status: "OPERATING", ChangeDate: testNow.AddDate(0, -1, 0)}
}

func workOrder(id int64, assetNum string, daysAgo int, cost int64) models.WorkOrder {
	date := testNow.AddDate(0, 0, -daysAgo)
	return models.WorkOrder{
		WorkOrderID:     id,
		AssetNum:        assetNum,
		MaintenanceDate: date,
		Status:          "Completed",
		Cost:            models.AmountFromInt(cost),
		Duration:        2,
		TechnicianID:    "T1",
		ChangeDate:      date,
	}
}
