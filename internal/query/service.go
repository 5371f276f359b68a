// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package query

import (
	"context"
	"reflect"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tomtom215/maximo-analytics/internal/analytics"
	"github.com/tomtom215/maximo-analytics/internal/database"
	"github.com/tomtom215/maximo-analytics/internal/logging"
	"github.com/tomtom215/maximo-analytics/internal/metrics"
)

// DefaultTimeout bounds a single execution when no WithTimeout option is given.
const DefaultTimeout = 30 * time.Second

// Store is the record store contract the service depends on.
// *database.DB satisfies it.
type Store interface {
	Query(ctx context.Context, query string, args ...any) ([]database.Row, error)
	Dialect() database.Dialect
}

// Result is a successful execution.
type Result struct {
	Name string

	// Rows is a non-nil slice of the entry's output schema.
	Rows any

	Count    int
	Duration time.Duration
}

// Service runs catalog entries against a Store. It is safe for concurrent use.
type Service struct {
	store   Store
	catalog *analytics.Catalog
	clock   clockwork.Clock
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for trailing time windows and durations.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithTimeout sets the per-execution deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a Service over store and catalog.
func NewService(store Store, catalog *analytics.Catalog, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: catalog,
		clock:   clockwork.NewRealClock(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog the service dispatches to.
func (s *Service) Catalog() *analytics.Catalog {
	return s.catalog
}

// Execute runs the named entry. On failure it returns an *Error and no result.
func (s *Service) Execute(ctx context.Context, name string) (*Result, error) {
	entry, ok := s.catalog.Lookup(name)
	if !ok {
		metrics.RecordCatalogQuery("unknown", 0, 0, string(KindNotFound))
		return nil, notFound(name)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.clock.Now()
	stmt := entry.Statement(s.store.Dialect(), analytics.NewWindow(start))

	result, err := s.run(ctx, entry, stmt)
	duration := s.clock.Since(start)
	if err != nil {
		qerr := storeFailure(name, err)
		metrics.RecordCatalogQuery(name, duration, 0, string(qerr.Kind))
		logging.CtxErr(ctx, err).
			Str("query", name).
			Dur("duration", duration).
			Msg("Analytics query failed")
		return nil, qerr
	}

	count := reflect.ValueOf(result).Len()
	metrics.RecordCatalogQuery(name, duration, count, "")
	logging.Ctx(ctx).Debug().
		Str("query", name).
		Int("rows", count).
		Dur("duration", duration).
		Msg("Analytics query executed")

	return &Result{
		Name:     name,
		Rows:     result,
		Count:    count,
		Duration: duration,
	}, nil
}

func (s *Service) run(ctx context.Context, entry *analytics.Entry, stmt analytics.Statement) (any, error) {
	rows, err := s.store.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	return entry.Decode(rows)
}
