// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package analytics

import (
	"fmt"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/database"
	"github.com/tomtom215/maximo-analytics/internal/models"
)

const (
	topMaintainedLimit     = 5
	costlyAssetsLimit      = 10
	highCostThreshold      = 10000
	secondsPerDay          = 86400.0
	secondsPerHour         = 3600.0
	completedStatusLiteral = "'" + models.WorkOrderStatusCompleted + "'"
)

// Entry names, also the last path segment of each endpoint.
const (
	EntryAssets                  = "assets"
	EntryTopMaintainedAssets     = "top_maintained_assets"
	EntryAvgTimeBetweenFailures  = "avg_time_between_failures"
	EntryHighCostAssets          = "high_cost_assets"
	EntryNoMaintenanceLastYear   = "no_maintenance_last_year"
	EntryTopTechnicians          = "top_technicians"
	EntryLastMaintenanceStatus   = "last_maintenance_status"
	EntryTotalDowntimeLastMonth  = "total_downtime_last_month"
	EntryLongDurationWorkorders  = "long_duration_workorders"
	EntryCostlyMaintenanceAssets = "costly_maintenance_assets"
	EntryMaintenanceByWeekday    = "maintenance_by_weekday"
)

// fixed wraps a statement that takes no arguments and ignores the window.
func fixed(build func(d database.Dialect) string) func(database.Dialect, Window) Statement {
	return func(d database.Dialect, _ Window) Statement {
		return Statement{SQL: build(d)}
	}
}

// trailing wraps a statement bound to [cutoff, now] as its first two placeholders.
func trailing(cutoff func(Window) time.Time, build func(d database.Dialect) string) func(database.Dialect, Window) Statement {
	return func(d database.Dialect, w Window) Statement {
		return Statement{SQL: build(d), Args: []any{cutoff(w), w.Now}}
	}
}

func maintenanceEntries() []*Entry {
	return []*Entry{
		{
			Name:        EntryAssets,
			Description: "All asset records with every column the store defines",
			Tables:      []string{"assets"},
			build: fixed(func(database.Dialect) string {
				return `SELECT * FROM assets ORDER BY assetnum`
			}),
			decode: passthrough,
		},
		{
			Name:        EntryTopMaintainedAssets,
			Description: "The five assets with the most work orders",
			Tables:      []string{"workorders"},
			Columns:     []string{"assetnum", "maintenance_count"},
			build: fixed(func(d database.Dialect) string {
				return `SELECT assetnum, COUNT(workorderid) AS maintenance_count
FROM workorders
WHERE assetnum IS NOT NULL
GROUP BY assetnum
ORDER BY maintenance_count DESC, assetnum ASC
` + d.Limit(topMaintainedLimit)
			}),
			decode: decodeAs[models.TopMaintainedAsset](),
		},
		{
			Name:        EntryAvgTimeBetweenFailures,
			Description: "Average days between consecutive completed work orders per asset (assets with at least two)",
			Tables:      []string{"workorders"},
			Columns:     []string{"assetnum", "avg_days_between_failures"},
			build: fixed(func(d database.Dialect) string {
				gap := d.SecondsBetween(
					"LAG(maintenance_date) OVER (PARTITION BY assetnum ORDER BY maintenance_date, workorderid)",
					"maintenance_date",
				)
				return fmt.Sprintf(`SELECT assetnum, AVG(gap_seconds) / %.1f AS avg_days_between_failures
FROM (
	SELECT assetnum, %s AS gap_seconds
	FROM workorders
	WHERE status = %s AND assetnum IS NOT NULL AND maintenance_date IS NOT NULL
) gaps
WHERE gap_seconds IS NOT NULL
GROUP BY assetnum
ORDER BY assetnum ASC`, secondsPerDay, gap, completedStatusLiteral)
			}),
			decode: decodeAs[models.AssetFailureInterval](),
		},
		{
			Name:        EntryHighCostAssets,
			Description: "Assets whose total work order cost exceeds 10000",
			Tables:      []string{"workorders"},
			Columns:     []string{"assetnum", "total_maintenance_cost"},
			build: fixed(func(database.Dialect) string {
				return fmt.Sprintf(`SELECT assetnum, SUM(cost) AS total_maintenance_cost
FROM workorders
WHERE assetnum IS NOT NULL
GROUP BY assetnum
HAVING SUM(cost) > %d
ORDER BY assetnum ASC`, highCostThreshold)
			}),
			decode: decodeAs[models.HighCostAsset](),
		},
		{
			Name:        EntryNoMaintenanceLastYear,
			Description: "Assets with no work order dated within the last 365 days",
			Tables:      []string{"assets", "workorders"},
			Columns:     []string{"assetnum"},
			build: trailing(func(w Window) time.Time { return w.YearAgo }, func(d database.Dialect) string {
				return fmt.Sprintf(`SELECT a.assetnum
FROM assets a
WHERE NOT EXISTS (
	SELECT 1 FROM workorders w
	WHERE w.assetnum = a.assetnum
	  AND w.maintenance_date >= %s
	  AND w.maintenance_date <= %s
)
ORDER BY a.assetnum ASC`, d.Placeholder(1), d.Placeholder(2))
			}),
			decode: decodeAs[models.UnmaintainedAsset](),
		},
		{
			Name:        EntryTopTechnicians,
			Description: "Completed work orders per technician, most first",
			Tables:      []string{"workorders"},
			Columns:     []string{"technician_id", "completed_workorders"},
			build: fixed(func(database.Dialect) string {
				return fmt.Sprintf(`SELECT technician_id, COUNT(workorderid) AS completed_workorders
FROM workorders
WHERE status = %s AND technician_id IS NOT NULL
GROUP BY technician_id
ORDER BY completed_workorders DESC, technician_id ASC`, completedStatusLiteral)
			}),
			decode: decodeAs[models.TechnicianWorkload](),
		},
		{
			Name:        EntryLastMaintenanceStatus,
			Description: "Latest maintenance date per asset and work order status",
			Tables:      []string{"assets", "workorders"},
			Columns:     []string{"assetnum", "description", "last_maintenance_date", "status"},
			build: fixed(func(database.Dialect) string {
				return `SELECT a.assetnum, a.description, MAX(w.maintenance_date) AS last_maintenance_date, w.status
FROM assets a
JOIN workorders w ON a.assetnum = w.assetnum
GROUP BY a.assetnum, a.description, w.status
ORDER BY a.assetnum ASC, w.status ASC`
			}),
			decode: decodeAs[models.AssetMaintenanceStatus](),
		},
		{
			Name:        EntryTotalDowntimeLastMonth,
			Description: "Downtime hours per asset for events starting within the last 30 days",
			Tables:      []string{"downtime"},
			Columns:     []string{"assetnum", "total_downtime_hours"},
			build: trailing(func(w Window) time.Time { return w.MonthAgo }, func(d database.Dialect) string {
				return fmt.Sprintf(`SELECT assetnum, SUM(%s) / %.1f AS total_downtime_hours
FROM downtime
WHERE start_time >= %s
  AND start_time <= %s
  AND end_time IS NOT NULL
  AND assetnum IS NOT NULL
GROUP BY assetnum
ORDER BY assetnum ASC`, d.SecondsBetween("start_time", "end_time"), secondsPerHour, d.Placeholder(1), d.Placeholder(2))
			}),
			decode: decodeAs[models.AssetDowntime](),
		},
		{
			Name:        EntryLongDurationWorkorders,
			Description: "Work orders that took longer than the average for their asset",
			Tables:      []string{"workorders"},
			Columns:     []string{"workorderid", "assetnum", "duration"},
			build: fixed(func(database.Dialect) string {
				return `SELECT w.workorderid, w.assetnum, w.duration
FROM workorders w
JOIN (
	SELECT assetnum, AVG(duration) AS avg_duration
	FROM workorders
	GROUP BY assetnum
) means ON w.assetnum = means.assetnum
WHERE w.duration > means.avg_duration
ORDER BY w.assetnum ASC, w.workorderid ASC`
			}),
			decode: decodeAs[models.LongDurationWorkOrder](),
		},
		{
			Name:        EntryCostlyMaintenanceAssets,
			Description: "The ten assets with the highest work order cost in the last six months",
			Tables:      []string{"workorders"},
			Columns:     []string{"assetnum", "total_cost"},
			build: trailing(func(w Window) time.Time { return w.SixMonthsAgo }, func(d database.Dialect) string {
				return fmt.Sprintf(`SELECT assetnum, COALESCE(SUM(cost), 0) AS total_cost
FROM workorders
WHERE maintenance_date >= %s
  AND maintenance_date <= %s
  AND assetnum IS NOT NULL
GROUP BY assetnum
ORDER BY total_cost DESC, assetnum ASC
%s`, d.Placeholder(1), d.Placeholder(2), d.Limit(costlyAssetsLimit))
			}),
			decode: decodeAs[models.CostlyMaintenanceAsset](),
		},
		{
			Name:        EntryMaintenanceByWeekday,
			Description: "Work order count per weekday of the maintenance date",
			Tables:      []string{"workorders"},
			Columns:     []string{"day_of_week", "workorder_count"},
			build: fixed(func(d database.Dialect) string {
				dow := d.WeekdayName("maintenance_date")
				return fmt.Sprintf(`SELECT %s AS day_of_week, COUNT(workorderid) AS workorder_count
FROM workorders
WHERE maintenance_date IS NOT NULL
GROUP BY %s
ORDER BY workorder_count DESC, day_of_week ASC`, dow, dow)
			}),
			decode: decodeAs[models.WeekdayMaintenance](),
		},
	}
}
