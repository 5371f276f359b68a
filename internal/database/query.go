// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"context"
	"database/sql"
	"math/big"
	"time"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/maximo-analytics/internal/logging"
	"github.com/tomtom215/maximo-analytics/internal/metrics"
)

// Query executes one read statement with bound arguments and returns every
// row. The connection is always released; on any failure no rows are
// returned and the error is a *StoreError. Query does not retry.
func (db *DB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	if db.closed.Load() {
		return nil, asStoreError("query", db.driver, ErrClosed)
	}
	ctx, cancel := ensureContext(ctx, defaultQueryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := db.withBreaker(func() ([]Row, error) {
		return db.query(ctx, query, args...)
	})
	metrics.RecordStoreQuery(db.driver, time.Since(start), errorType(err))

	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("driver", db.driver).Msg("Store query failed")
		return nil, err
	}
	return rows, nil
}

func (db *DB) query(ctx context.Context, query string, args ...any) (result []Row, err error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, asStoreError("query", db.driver, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			result, err = nil, asStoreError("rows", db.driver, cerr)
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, asStoreError("rows", db.driver, err)
	}

	result = make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, asStoreError("scan", db.driver, err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		result = append(result, NewRow(columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, asStoreError("rows", db.driver, err)
	}
	return result, nil
}

// normalizeValue maps driver-specific scan results onto the small set of
// types the rest of the service handles: nil, string, int64, float64, bool,
// time.Time and decimal.Decimal.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x > 1<<63-1 {
			return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
		}
		return int64(x)
	case float32:
		return float64(x)
	case *big.Int:
		if x == nil {
			return nil
		}
		if x.IsInt64() {
			return x.Int64()
		}
		return decimal.NewFromBigInt(x, 0)
	case duckdb.Decimal:
		if x.Value == nil {
			return nil
		}
		return decimal.NewFromBigInt(x.Value, -int32(x.Scale))
	case sql.RawBytes:
		return string(x)
	default:
		return v
	}
}
