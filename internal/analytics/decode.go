// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package analytics

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/database"
	"github.com/tomtom215/maximo-analytics/internal/models"
)

// fieldPlan binds one `db`-tagged struct field to a coercion.
type fieldPlan struct {
	index  int
	column string
	set    func(dst reflect.Value, v any) error
}

var (
	plansMu sync.RWMutex
	plans   = make(map[reflect.Type][]fieldPlan)

	timeType      = reflect.TypeOf(time.Time{})
	timePtrType   = reflect.TypeOf((*time.Time)(nil))
	stringPtrType = reflect.TypeOf((*string)(nil))
	amountType    = reflect.TypeOf(models.Amount{})
)

// decodeRows maps rows onto T by `db` struct tags. Every tagged field must
// be present in each row. The result is non-nil.
func decodeRows[T any](rows []database.Row) ([]T, error) {
	plan, err := planFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	out := make([]T, len(rows))
	for i, row := range rows {
		dst := reflect.ValueOf(&out[i]).Elem()
		for _, f := range plan {
			v, ok := row.Get(f.column)
			if !ok {
				return nil, fmt.Errorf("row %d: missing column %q", i, f.column)
			}
			if err := f.set(dst.Field(f.index), v); err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i, f.column, err)
			}
		}
	}
	return out, nil
}

// decodeAs adapts decodeRows to the Entry decode signature.
func decodeAs[T any]() func([]database.Row) (any, error) {
	return func(rows []database.Row) (any, error) {
		return decodeRows[T](rows)
	}
}

// passthrough returns store rows unchanged for entries whose columns the
// store defines.
func passthrough(rows []database.Row) (any, error) {
	if rows == nil {
		rows = []database.Row{}
	}
	return rows, nil
}

func planFor(t reflect.Type) ([]fieldPlan, error) {
	plansMu.RLock()
	plan, ok := plans[t]
	plansMu.RUnlock()
	if ok {
		return plan, nil
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot decode rows into %s", t)
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		column := sf.Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}
		set, err := setterFor(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		plan = append(plan, fieldPlan{index: i, column: column, set: set})
	}

	plansMu.Lock()
	plans[t] = plan
	plansMu.Unlock()
	return plan, nil
}

func setterFor(t reflect.Type) (func(reflect.Value, any) error, error) {
	switch {
	case t == amountType:
		return func(dst reflect.Value, v any) error {
			d, err := database.AsDecimal(v)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(models.NewAmount(d)))
			return nil
		}, nil
	case t == timeType:
		return func(dst reflect.Value, v any) error {
			ts, err := database.AsTime(v)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(ts))
			return nil
		}, nil
	case t == timePtrType:
		return func(dst reflect.Value, v any) error {
			ts, err := database.AsNullTime(v)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(ts))
			return nil
		}, nil
	case t == stringPtrType:
		return func(dst reflect.Value, v any) error {
			s, err := database.AsNullString(v)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(s))
			return nil
		}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return func(dst reflect.Value, v any) error {
			s, err := database.AsString(v)
			if err != nil {
				return err
			}
			dst.SetString(s)
			return nil
		}, nil
	case reflect.Int64:
		return func(dst reflect.Value, v any) error {
			n, err := database.AsInt64(v)
			if err != nil {
				return err
			}
			dst.SetInt(n)
			return nil
		}, nil
	case reflect.Float64:
		return func(dst reflect.Value, v any) error {
			f, err := database.AsFloat64(v)
			if err != nil {
				return err
			}
			dst.SetFloat(f)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported field type %s", t)
}
