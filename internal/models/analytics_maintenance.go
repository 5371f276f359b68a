// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package models

import (
	"time"
)

// TopMaintainedAsset is one row of top_maintained_assets
type TopMaintainedAsset struct {
	AssetNum         string `json:"assetnum" db:"assetnum"`
	MaintenanceCount int64  `json:"maintenance_count" db:"maintenance_count"`
}

// AssetFailureInterval is one row of avg_time_between_failures.
// AvgDaysBetweenFailures is a fractional day count, not rounded.
type AssetFailureInterval struct {
	AssetNum               string  `json:"assetnum" db:"assetnum"`
	AvgDaysBetweenFailures float64 `json:"avg_days_between_failures" db:"avg_days_between_failures"`
}

// HighCostAsset is one row of high_cost_assets
type HighCostAsset struct {
	AssetNum             string `json:"assetnum" db:"assetnum"`
	TotalMaintenanceCost Amount `json:"total_maintenance_cost" db:"total_maintenance_cost"`
}

// UnmaintainedAsset is one row of no_maintenance_last_year
type UnmaintainedAsset struct {
	AssetNum string `json:"assetnum" db:"assetnum"`
}

// TechnicianWorkload is one row of top_technicians
type TechnicianWorkload struct {
	TechnicianID        string `json:"technician_id" db:"technician_id"`
	CompletedWorkorders int64  `json:"completed_workorders" db:"completed_workorders"`
}

// AssetMaintenanceStatus is one row of last_maintenance_status.
// Description, Status and LastMaintenanceDate are nullable in the store; the
// date is null when every work order in the group lacks one.
type AssetMaintenanceStatus struct {
	AssetNum            string     `json:"assetnum" db:"assetnum"`
	Description         *string    `json:"description" db:"description"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date" db:"last_maintenance_date"`
	Status              *string    `json:"status" db:"status"`
}

// AssetDowntime is one row of total_downtime_last_month.
// TotalDowntimeHours may be negative when the store holds inverted intervals.
type AssetDowntime struct {
	AssetNum           string  `json:"assetnum" db:"assetnum"`
	TotalDowntimeHours float64 `json:"total_downtime_hours" db:"total_downtime_hours"`
}

// LongDurationWorkOrder is one row of long_duration_workorders
type LongDurationWorkOrder struct {
	WorkOrderID int64   `json:"workorderid" db:"workorderid"`
	AssetNum    string  `json:"assetnum" db:"assetnum"`
	Duration    float64 `json:"duration" db:"duration"`
}

// CostlyMaintenanceAsset is one row of costly_maintenance_assets
type CostlyMaintenanceAsset struct {
	AssetNum  string `json:"assetnum" db:"assetnum"`
	TotalCost Amount `json:"total_cost" db:"total_cost"`
}

// WeekdayMaintenance is one row of maintenance_by_weekday
type WeekdayMaintenance struct {
	DayOfWeek      string `json:"day_of_week" db:"day_of_week"`
	WorkorderCount int64  `json:"workorder_count" db:"workorder_count"`
}
