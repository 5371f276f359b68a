// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

// Package query executes analytics catalog entries against the record store.
//
// A request moves through Received, Dispatched (catalog lookup), Executing
// (one store call) and ends Succeeded with every row or Failed with an
// *Error and no rows. There is no retry, caching or cross-request state;
// concurrent Execute calls only share the store's connection pool.
//
// Each execution gets its own deadline (WithTimeout, 30s by default) and
// derives its time window from the service clock, which tests replace with
// a clockwork fake.
package query
