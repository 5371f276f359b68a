// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := asStoreError("query", "postgres", cause)

	if err.Error() != "store query failed: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to its cause")
	}
	if again := asStoreError("scan", "postgres", err); again != err {
		t.Error("asStoreError should not double-wrap")
	}
	if asStoreError("query", "duckdb", nil) != nil {
		t.Error("asStoreError(nil) should be nil")
	}
	if !IsStoreError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsStoreError should see through wrapping")
	}
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{context.DeadlineExceeded, "timeout"},
		{fmt.Errorf("x: %w", context.Canceled), "canceled"},
		{gobreaker.ErrOpenState, "circuit_open"},
		{gobreaker.ErrTooManyRequests, "circuit_open"},
		{ErrClosed, "connection"},
		{errors.New("dial tcp: connection refused"), "connection"},
		{errors.New("syntax error at or near"), "query"},
	}
	for _, tt := range tests {
		if got := errorType(tt.err); got != tt.want {
			t.Errorf("errorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
