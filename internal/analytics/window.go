// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package analytics

import (
	"time"
)

const day = 24 * time.Hour

// Window holds the reference instant for a single execution and the
// trailing cutoffs derived from it. All values are UTC.
type Window struct {
	Now          time.Time
	YearAgo      time.Time
	MonthAgo     time.Time
	SixMonthsAgo time.Time
}

// NewWindow derives the trailing cutoffs from now. now is truncated to
// microseconds, the finest precision the supported stores keep.
func NewWindow(now time.Time) Window {
	now = now.UTC().Truncate(time.Microsecond)
	return Window{
		Now:          now,
		YearAgo:      now.Add(-365 * day),
		MonthAgo:     now.Add(-30 * day),
		SixMonthsAgo: now.AddDate(0, -6, 0),
	}
}
