// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrClosed is returned by Query and Ping after Close.
var ErrClosed = errors.New("database is closed")

// StoreError reports a failure talking to the record store: connectivity,
// malformed SQL, a scan or type mismatch, or an open circuit breaker.
// No rows accompany a StoreError.
type StoreError struct {
	Op     string // open, ping, query, scan, rows, decode
	Driver string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err is or wraps a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// asStoreError wraps err unless it already is a *StoreError.
func asStoreError(op, driver string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Driver: driver, Err: err}
}

// errorType classifies an error into a low-cardinality metric label.
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, ErrClosed), isConnectionError(err):
		return "connection"
	default:
		return "query"
	}
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"bad connection",
		"database is closed",
		"no such host",
		"i/o timeout",
		"failed to connect",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
