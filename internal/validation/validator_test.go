// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package validation

import (
	"strings"
	"testing"
	"time"
)

type testServer struct {
	Port        int    `koanf:"port" validate:"min=1,max=65535"`
	Environment string `koanf:"environment" validate:"oneof=development staging production"`
}

type testStore struct {
	URL     string        `koanf:"url" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type testConfig struct {
	Server testServer `koanf:"server"`
	Store  testStore  `koanf:"store"`
}

func validTestConfig() testConfig {
	return testConfig{
		Server: testServer{Port: 5000, Environment: "production"},
		Store:  testStore{URL: ":memory:", Timeout: time.Second},
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	cfg := validTestConfig()
	if err := ValidateStruct(&cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *testConfig)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing url",
			mutate:    func(c *testConfig) { c.Store.URL = "" },
			wantField: "store.url",
			wantTag:   "required",
			wantMsg:   "store.url is required",
		},
		{
			name:      "port too large",
			mutate:    func(c *testConfig) { c.Server.Port = 70000 },
			wantField: "server.port",
			wantTag:   "max",
			wantMsg:   "server.port must be at most 65535",
		},
		{
			name:      "unknown environment",
			mutate:    func(c *testConfig) { c.Server.Environment = "qa" },
			wantField: "server.environment",
			wantTag:   "oneof",
			wantMsg:   "server.environment must be one of: development staging production",
		},
		{
			name:      "zero timeout",
			mutate:    func(c *testConfig) { c.Store.Timeout = 0 },
			wantField: "store.timeout",
			wantTag:   "gt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)

			verr := ValidateStruct(&cfg)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrorsJoined(t *testing.T) {
	cfg := validTestConfig()
	cfg.Store.URL = ""
	cfg.Server.Port = 0

	verr := ValidateStruct(&cfg)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(verr.Errors()))
	}
	msg := verr.Error()
	if !strings.Contains(msg, "store.url is required") || !strings.Contains(msg, "server.port must be at least 1") {
		t.Errorf("unexpected joined message: %s", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("expected messages joined with '; ', got %s", msg)
	}
}

func TestStructError_Empty(t *testing.T) {
	se := &StructError{}
	if se.Error() != "validation failed" {
		t.Errorf("Error() = %q", se.Error())
	}
}
