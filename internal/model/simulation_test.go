package model

import (
	"math"
	"strings"
	"testing"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		DurationYears:              30,
		PropertyPrice:              500000,
		DownPaymentPct:             20,
		MortgageRateAnnual:         4.5,
		PropertyAppreciationAnnual: 3.0,
		EquityGrowthAnnual:         7.0,
		MonthlyRent:                2000,
		RentInflationAnnual:        3.0,
	}
}

func TestNewSimulationConfigValid(t *testing.T) {
	cfg, err := NewSimulationConfig(validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DurationYears != 30 || cfg.PropertyPrice != 500000 {
		t.Errorf("config fields not preserved: %+v", cfg)
	}
}

func TestNewSimulationConfigRejectsBadFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimulationConfig)
		wantErr string
	}{
		{
			name:    "zero duration",
			mutate:  func(c *SimulationConfig) { c.DurationYears = 0 },
			wantErr: "DurationYears",
		},
		{
			name:    "negative duration",
			mutate:  func(c *SimulationConfig) { c.DurationYears = -5 },
			wantErr: "DurationYears",
		},
		{
			name:    "zero property price",
			mutate:  func(c *SimulationConfig) { c.PropertyPrice = 0 },
			wantErr: "PropertyPrice",
		},
		{
			name:    "zero down payment",
			mutate:  func(c *SimulationConfig) { c.DownPaymentPct = 0 },
			wantErr: "DownPaymentPct",
		},
		{
			name:    "down payment above 100",
			mutate:  func(c *SimulationConfig) { c.DownPaymentPct = 150 },
			wantErr: "DownPaymentPct",
		},
		{
			name:    "negative mortgage rate",
			mutate:  func(c *SimulationConfig) { c.MortgageRateAnnual = -1 },
			wantErr: "MortgageRateAnnual",
		},
		{
			name:    "NaN appreciation",
			mutate:  func(c *SimulationConfig) { c.PropertyAppreciationAnnual = math.NaN() },
			wantErr: "PropertyAppreciationAnnual",
		},
		{
			name:    "infinite equity growth",
			mutate:  func(c *SimulationConfig) { c.EquityGrowthAnnual = math.Inf(1) },
			wantErr: "EquityGrowthAnnual",
		},
		{
			name:    "negative rent",
			mutate:  func(c *SimulationConfig) { c.MonthlyRent = -100 },
			wantErr: "MonthlyRent",
		},
		{
			name:    "negative rent inflation",
			mutate:  func(c *SimulationConfig) { c.RentInflationAnnual = -0.5 },
			wantErr: "RentInflationAnnual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			_, err := NewSimulationConfig(c)
			if err == nil {
				t.Fatalf("expected error naming %s, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not name field %s", err, tt.wantErr)
			}
		})
	}
}

func TestNegativeGrowthRatesAreValid(t *testing.T) {
	c := validConfig()
	c.PropertyAppreciationAnnual = -2.0
	c.EquityGrowthAnnual = -5.0
	if _, err := NewSimulationConfig(c); err != nil {
		t.Fatalf("depreciation should be allowed: %v", err)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := NewSimulationConfig(validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.Months(); got != 360 {
		t.Errorf("Months() = %d, want 360", got)
	}
	if got := cfg.DownPayment(); got != 100000 {
		t.Errorf("DownPayment() = %f, want 100000", got)
	}
	if got := cfg.LoanAmount(); got != 400000 {
		t.Errorf("LoanAmount() = %f, want 400000", got)
	}
	if got := cfg.MonthlyMortgageRate(); math.Abs(got-0.00375) > 1e-12 {
		t.Errorf("MonthlyMortgageRate() = %f, want 0.00375", got)
	}
	if got := cfg.LeverageRatio(); math.Abs(got-5) > 1e-12 {
		t.Errorf("LeverageRatio() = %f, want 5", got)
	}
}

func TestWinnerFromDifference(t *testing.T) {
	if got := WinnerFromDifference(1000); got != WinnerBuy {
		t.Errorf("positive difference: got %s, want %s", got, WinnerBuy)
	}
	if got := WinnerFromDifference(-1000); got != WinnerRent {
		t.Errorf("negative difference: got %s, want %s", got, WinnerRent)
	}
	if got := WinnerFromDifference(0); got != WinnerRent {
		t.Errorf("tie: got %s, want %s", got, WinnerRent)
	}
}
