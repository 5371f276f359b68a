// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package query

import (
	"errors"
	"fmt"
)

// Kind classifies an execution failure.
type Kind string

const (
	// KindNotFound means the requested name has no catalog entry.
	KindNotFound Kind = "NotFound"

	// KindStoreError means the store could not execute the query or its
	// rows could not be mapped to the output schema.
	KindStoreError Kind = "StoreError"
)

// Error is the structured failure returned by Execute.
type Error struct {
	Kind    Kind
	Name    string // requested catalog entry
	Message string // human-readable, safe to return to clients
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(name string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Name:    name,
		Message: fmt.Sprintf("unknown analytics query %q", name),
	}
}

func storeFailure(name string, err error) *Error {
	return &Error{
		Kind:    KindStoreError,
		Name:    name,
		Message: fmt.Sprintf("%s: %v", name, err),
		Err:     err,
	}
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return ""
}

// IsNotFound reports whether err is a NotFound execution failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsStoreError reports whether err is a StoreError execution failure.
func IsStoreError(err error) bool {
	return KindOf(err) == KindStoreError
}
