// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/metrics"
)

// StatsSource provides connection pool statistics. *database.DB satisfies it.
type StatsSource interface {
	Stats() sql.DBStats
}

// PoolStatsService publishes store pool statistics to Prometheus at a fixed
// interval until its context is canceled.
type PoolStatsService struct {
	source   StatsSource
	interval time.Duration
	record   func(sql.DBStats)
}

// NewPoolStatsService creates the reporter. Non-positive interval means 15s.
func NewPoolStatsService(source StatsSource, interval time.Duration) *PoolStatsService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &PoolStatsService{
		source:   source,
		interval: interval,
		record:   metrics.RecordPoolStats,
	}
}

// Serve implements suture.Service. It reports once immediately, then on
// every tick.
func (p *PoolStatsService) Serve(ctx context.Context) error {
	p.record(p.source.Stats())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.record(p.source.Stats())
		}
	}
}

// String implements fmt.Stringer for suture log events.
func (p *PoolStatsService) String() string {
	return "pool-stats"
}
