// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package analytics

import (
	"github.com/tomtom215/maximo-analytics/internal/database"
)

// Statement is a rendered query and its bound arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Entry is one named analytic computation, exposed as exactly one endpoint.
type Entry struct {
	Name        string
	Description string

	// Tables lists the base tables the computation reads.
	Tables []string

	// Columns lists the output columns in JSON key order. Empty means the
	// store defines them (assets).
	Columns []string

	build  func(d database.Dialect, w Window) Statement
	decode func(rows []database.Row) (any, error)
}

// Statement renders the entry's query for a dialect and time window.
func (e *Entry) Statement(d database.Dialect, w Window) Statement {
	return e.build(d, w)
}

// Decode maps store rows onto the entry's output schema. The result is
// always a non-nil slice, empty when rows is empty.
func (e *Entry) Decode(rows []database.Row) (any, error) {
	return e.decode(rows)
}

// Catalog is the fixed, read-only set of entries. It is safe for concurrent use.
type Catalog struct {
	entries []*Entry
	byName  map[string]*Entry
}

// NewCatalog returns the catalog with every maintenance analytic registered
// in endpoint order.
func NewCatalog() *Catalog {
	entries := maintenanceEntries()
	c := &Catalog{
		entries: entries,
		byName:  make(map[string]*Entry, len(entries)),
	}
	for _, e := range entries {
		c.byName[e.Name] = e
	}
	return c
}

// Lookup returns the entry with the given name.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Entries returns all entries in registration order.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns all entry names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}
