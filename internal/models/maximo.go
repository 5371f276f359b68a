// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package models

import (
	"time"
)

// WorkOrderStatusCompleted is the status value counted by failure-interval and
// technician analytics.
const WorkOrderStatusCompleted = "Completed"

// Asset is a maintainable unit identified by AssetNum.
// ChangeDate is the change-tracking column BI clients use as an incremental
// refresh watermark.
type Asset struct {
	AssetNum    string    `json:"assetnum" db:"assetnum"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location,omitempty" db:"location"`
	Status      string    `json:"status,omitempty" db:"status"`
	ChangeDate  time.Time `json:"changedate" db:"changedate"`
}

// WorkOrder is a maintenance task recorded against an asset.
// AssetNum may reference an asset that no longer exists.
type WorkOrder struct {
	WorkOrderID     int64     `json:"workorderid" db:"workorderid"`
	AssetNum        string    `json:"assetnum" db:"assetnum"`
	MaintenanceDate time.Time `json:"maintenance_date" db:"maintenance_date"`
	Status          string    `json:"status" db:"status"`
	Cost            Amount    `json:"cost" db:"cost"`
	Duration        float64   `json:"duration" db:"duration"` // hours
	TechnicianID    string    `json:"technician_id" db:"technician_id"`
	ChangeDate      time.Time `json:"changedate" db:"changedate"`
}

// DowntimeEvent is an interval during which an asset was not operational.
// EndTime before StartTime is tolerated and yields a negative duration.
type DowntimeEvent struct {
	AssetNum  string    `json:"assetnum" db:"assetnum"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
}
