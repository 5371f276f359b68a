// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func TestAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		amount Amount
		want   string
	}{
		{"integer", AmountFromInt(12000), `12000`},
		{"trailing zeros trimmed", NewAmount(decimal.New(1200000, -2)), `12000`},
		{"fraction", MustParseAmount("1234.50"), `1234.5`},
		{"zero", Amount{}, `0`},
		{"negative", MustParseAmount("-10.25"), `-10.25`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.amount)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{`12000`, "12000", false},
		{`"12000.00"`, "12000", false},
		{`0.1`, "0.1", false},
		{`null`, "0", false},
		{`"abc"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.in), &a)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if a.String() != tt.want {
				t.Errorf("Unmarshal() = %s, want %s", a.String(), tt.want)
			}
		})
	}
}

func TestHighCostAsset_JSONKeys(t *testing.T) {
	row := HighCostAsset{AssetNum: "A1", TotalMaintenanceCost: AmountFromInt(12000)}

	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"assetnum":"A1","total_maintenance_cost":12000}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestAssetMaintenanceStatus_NullFields(t *testing.T) {
	row := AssetMaintenanceStatus{AssetNum: "A1"}

	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"assetnum":"A1","description":null,"last_maintenance_date":null,"status":null}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestAssetMaintenanceStatus_LastMaintenanceDate(t *testing.T) {
	when := time.Date(2026, 3, 4, 8, 30, 0, 0, time.UTC)
	desc, status := "Boiler", "COMP"
	row := AssetMaintenanceStatus{AssetNum: "A1", Description: &desc, LastMaintenanceDate: &when, Status: &status}

	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"assetnum":"A1","description":"Boiler","last_maintenance_date":"2026-03-04T08:30:00Z","status":"COMP"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
