package models

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	Config  SimulationConfig `json:"config" binding:"required"`
	Options SimulateOptions  `json:"options,omitempty"`
}

// SimulationConfig carries the scenario parameters over the wire.
// All rate fields use percent form: 3.0 means 3% per year.
type SimulationConfig struct {
	ScenarioFile               string  `json:"scenario_file,omitempty"`
	Name                       string  `json:"name,omitempty"`
	DurationYears              int     `json:"duration_years"`
	PropertyPrice              float64 `json:"property_price"`
	DownPaymentPct             float64 `json:"down_payment_pct"`
	MortgageRateAnnual         float64 `json:"mortgage_rate_annual"`
	PropertyAppreciationAnnual float64 `json:"property_appreciation_annual"`
	EquityGrowthAnnual         float64 `json:"equity_growth_annual"`
	MonthlyRent                float64 `json:"monthly_rent"`
	RentInflationAnnual        float64 `json:"rent_inflation_annual"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
	LimitMonths   int  `json:"limit_months,omitempty"`   // 0 = all
}

// CompareRequest represents a request to compare multiple scenario variations
type CompareRequest struct {
	BaseConfig SimulationConfig `json:"base_config" binding:"required"`
	Variations []Variation      `json:"variations" binding:"required"`
}

// Variation defines a variation to simulate
type Variation struct {
	Name   string           `json:"name" binding:"required"`
	Config SimulationConfig `json:"config"`
}

// SweepRequest represents a request for a sensitivity sweep
type SweepRequest struct {
	Config    SimulationConfig `json:"config" binding:"required"`
	Parameter string           `json:"parameter" binding:"required"`
	Values    []float64        `json:"values" binding:"required"`
}
