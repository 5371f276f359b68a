// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package analytics

import (
	"testing"
	"time"
)

func TestNewWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 123456789, time.FixedZone("CEST", 2*3600))
	w := NewWindow(now)

	wantNow := time.Date(2026, 8, 31, 8, 0, 0, 123456000, time.UTC)
	if !w.Now.Equal(wantNow) || w.Now.Location() != time.UTC {
		t.Errorf("Now = %v, want %v", w.Now, wantNow)
	}
	if got := w.Now.Sub(w.YearAgo); got != 365*24*time.Hour {
		t.Errorf("YearAgo offset = %v", got)
	}
	if got := w.Now.Sub(w.MonthAgo); got != 30*24*time.Hour {
		t.Errorf("MonthAgo offset = %v", got)
	}
	// AddDate normalizes February 31st to March 3rd.
	wantSix := time.Date(2026, 3, 3, 8, 0, 0, 123456000, time.UTC)
	if !w.SixMonthsAgo.Equal(wantSix) {
		t.Errorf("SixMonthsAgo = %v, want %v", w.SixMonthsAgo, wantSix)
	}
}
