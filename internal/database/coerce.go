// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package database

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CoercionError reports a store value that cannot be converted to the type a
// result schema expects.
type CoercionError struct {
	Value  any
	Target string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot convert %T(%v) to %s", e.Value, e.Value, e.Target)
}

// timeLayouts are tried in order when a driver hands back a timestamp as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// AsString converts a normalized store value to string. NULL is an error.
func AsString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case decimal.Decimal:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", &CoercionError{Value: v, Target: "string"}
	}
}

// AsNullString is AsString with NULL mapped to nil.
func AsNullString(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := AsString(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AsInt64 converts a normalized store value to int64. Fractional values are rejected.
func AsInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, &CoercionError{Value: v, Target: "int64"}
		}
		return int64(x), nil
	case decimal.Decimal:
		if !x.IsInteger() {
			return 0, &CoercionError{Value: v, Target: "int64"}
		}
		return x.IntPart(), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, &CoercionError{Value: v, Target: "int64"}
		}
		return n, nil
	default:
		return 0, &CoercionError{Value: v, Target: "int64"}
	}
}

// AsFloat64 converts a normalized store value to float64. NULL is an error.
func AsFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case decimal.Decimal:
		return x.InexactFloat64(), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, &CoercionError{Value: v, Target: "float64"}
		}
		return f, nil
	default:
		return 0, &CoercionError{Value: v, Target: "float64"}
	}
}

// AsDecimal converts a normalized store value to an exact decimal.
// Floats are converted through their shortest decimal representation.
func AsDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return decimal.Zero, &CoercionError{Value: v, Target: "decimal"}
		}
		return decimal.NewFromFloat(x), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, &CoercionError{Value: v, Target: "decimal"}
		}
		return d, nil
	default:
		return decimal.Zero, &CoercionError{Value: v, Target: "decimal"}
	}
}

// AsTime converts a normalized store value to a UTC time.Time. NULL is an error.
func AsTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x.UTC(), nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(x)); err == nil {
				return t.UTC(), nil
			}
		}
	}
	return time.Time{}, &CoercionError{Value: v, Target: "time"}
}

// AsNullTime is AsTime with NULL mapped to nil.
func AsNullTime(v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := AsTime(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
