// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (the library caches struct
// metadata per instance). Field names in messages come from the koanf tag, so a
// failure on Config.Database.URL reads "database.url is required" and matches
// the key an operator would set in config.yaml.
//
//	type QueryConfig struct {
//	    Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&cfg); verr != nil {
//	    return fmt.Errorf("invalid configuration: %w", verr)
//	}
package validation
