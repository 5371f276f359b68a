// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package models defines data structures for Maximo Analytics.

Model Categories:

1. Base entities (owned by the upstream maintenance system, read-only here):
  - Asset, WorkOrder, DowntimeEvent

2. Catalog output rows, one type per analytics endpoint. Every field carries a
json tag (the wire key) and a db tag (the result column it is decoded from):
  - TopMaintainedAsset, AssetFailureInterval, HighCostAsset, UnmaintainedAsset,
    TechnicianWorkload, AssetMaintenanceStatus, AssetDowntime,
    LongDurationWorkOrder, CostlyMaintenanceAsset, WeekdayMaintenance

3. API response models:
  - ErrorResponse, CatalogEntryInfo, HealthResponse

Money values use Amount, an exact decimal that serializes as a bare JSON number.
*/
package models
