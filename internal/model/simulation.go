package model

import (
	"errors"
	"math"
)

// SimulationConfig defines the economic parameters of a buy-vs-rent comparison.
// Units:
// - DurationYears: whole years
// - PropertyPrice, MonthlyRent: $
// - All *Annual / *Pct fields: percent form (3.0 means 3% per year)
//
// The percent convention applies to RentInflationAnnual too: pass 3.0 for a 3%
// annual rent increase, not 0.03.
type SimulationConfig struct {
	DurationYears              int
	PropertyPrice              float64
	DownPaymentPct             float64
	MortgageRateAnnual         float64
	PropertyAppreciationAnnual float64
	EquityGrowthAnnual         float64
	MonthlyRent                float64
	RentInflationAnnual        float64
}

// NewSimulationConfig validates c and returns an immutable copy.
// Validation stops at the first violated constraint; values are never clamped.
func NewSimulationConfig(c SimulationConfig) (*SimulationConfig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *SimulationConfig) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DurationYears <= 0 {
		return errors.New("DurationYears must be > 0")
	}
	if !isFinite(c.PropertyPrice) {
		return errors.New("PropertyPrice must be finite")
	}
	if c.PropertyPrice <= 0 {
		return errors.New("PropertyPrice must be > 0")
	}
	if !isFinite(c.DownPaymentPct) {
		return errors.New("DownPaymentPct must be finite")
	}
	if c.DownPaymentPct <= 0 || c.DownPaymentPct > 100 {
		return errors.New("DownPaymentPct must be in (0, 100]")
	}
	if !isFinite(c.MortgageRateAnnual) {
		return errors.New("MortgageRateAnnual must be finite")
	}
	if c.MortgageRateAnnual < 0 {
		return errors.New("MortgageRateAnnual must be >= 0")
	}
	if !isFinite(c.PropertyAppreciationAnnual) {
		return errors.New("PropertyAppreciationAnnual must be finite")
	}
	if !isFinite(c.EquityGrowthAnnual) {
		return errors.New("EquityGrowthAnnual must be finite")
	}
	if !isFinite(c.MonthlyRent) {
		return errors.New("MonthlyRent must be finite")
	}
	if c.MonthlyRent < 0 {
		return errors.New("MonthlyRent must be >= 0")
	}
	if !isFinite(c.RentInflationAnnual) {
		return errors.New("RentInflationAnnual must be finite")
	}
	if c.RentInflationAnnual < 0 {
		return errors.New("RentInflationAnnual must be >= 0")
	}
	return nil
}

// Months is the number of simulated months; the series has Months+1 rows
// because month 0 is included.
func (c *SimulationConfig) Months() int {
	return c.DurationYears * 12
}

func (c *SimulationConfig) DownPayment() float64 {
	return c.PropertyPrice * (c.DownPaymentPct / 100)
}

func (c *SimulationConfig) LoanAmount() float64 {
	return c.PropertyPrice - c.DownPayment()
}

// MonthlyMortgageRate converts the annual percent rate to a monthly decimal.
func (c *SimulationConfig) MonthlyMortgageRate() float64 {
	return c.MortgageRateAnnual / 100 / 12
}

// LeverageRatio is property price over down payment: how much asset exposure
// one invested dollar controls.
func (c *SimulationConfig) LeverageRatio() float64 {
	return c.PropertyPrice / c.DownPayment()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
