// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/maximo-analytics/internal/metrics"
)

type stubStats struct {
	calls atomic.Int32
	stats sql.DBStats
}

func (s *stubStats) Stats() sql.DBStats {
	s.calls.Add(1)
	return s.stats
}

func TestNewPoolStatsService_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		svc := NewPoolStatsService(&stubStats{}, interval)
		if svc.interval != 15*time.Second {
			t.Errorf("interval %v: expected default 15s, got %v", interval, svc.interval)
		}
	}
	if got := NewPoolStatsService(&stubStats{}, time.Second).String(); got != "pool-stats" {
		t.Errorf("expected name pool-stats, got %q", got)
	}
}

func TestPoolStatsService_ReportsOnTick(t *testing.T) {
	source := &stubStats{stats: sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2, WaitCount: 7}}
	svc := NewPoolStatsService(source, 10*time.Millisecond)

	var mu sync.Mutex
	var recorded []sql.DBStats
	svc.record = func(s sql.DBStats) {
		mu.Lock()
		recorded = append(recorded, s)
		mu.Unlock()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(recorded) < 2 {
		t.Fatalf("expected an immediate report plus ticks, got %d reports", len(recorded))
	}
	if recorded[0].OpenConnections != 3 || recorded[0].WaitCount != 7 {
		t.Errorf("unexpected stats recorded: %+v", recorded[0])
	}
}

func TestPoolStatsService_PublishesGauges(t *testing.T) {
	source := &stubStats{stats: sql.DBStats{OpenConnections: 4, InUse: 3, Idle: 1, WaitCount: 11}}
	svc := NewPoolStatsService(source, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the immediate report still runs

	_ = svc.Serve(ctx)

	if got := testutil.ToFloat64(metrics.StorePoolConnections.WithLabelValues("in_use")); got != 3 {
		t.Errorf("expected in_use gauge 3, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.StorePoolWaits); got != 11 {
		t.Errorf("expected wait gauge 11, got %v", got)
	}
	if source.calls.Load() != 1 {
		t.Errorf("expected exactly one Stats call, got %d", source.calls.Load())
	}
}
