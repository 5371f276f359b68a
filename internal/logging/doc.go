// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

// Package logging provides the process-wide zerolog logger for Maximo Analytics.
//
// The logger is configured once from main and read everywhere else through the
// level helpers (Info, Warn, Error, ...) or through Ctx, which decorates the
// logger with the request id carried by the context.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("driver", "postgres").Msg("Store opened")
//	logging.Ctx(r.Context()).Error().Err(err).Str("query", name).Msg("Catalog query failed")
//
// # Configuration
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
