package models

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status  string            `json:"status"`
	Summary SimulationSummary `json:"summary"`
	Series  []MonthRow        `json:"series,omitempty"`
}

// SimulationSummary contains the scalar outcome of a simulation
type SimulationSummary struct {
	Months         int     `json:"months"`
	DownPayment    float64 `json:"down_payment"`
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	LeverageRatio  float64 `json:"leverage_ratio"`

	FinalNetBuy         float64 `json:"final_net_buy"`
	FinalNetRent        float64 `json:"final_net_rent"`
	FinalNetRentSavings float64 `json:"final_net_rent_savings"`
	FinalDifference     float64 `json:"final_difference"`

	Winner string `json:"winner"` // "BUY" or "RENT"

	BreakevenYear          *float64 `json:"breakeven_year,omitempty"`
	BreakevenYearVsSavings *float64 `json:"breakeven_year_vs_savings,omitempty"`
}

// MonthRow represents one month in the simulation series
type MonthRow struct {
	Month           int     `json:"month"`
	Year            float64 `json:"year"`
	HomeValue       float64 `json:"home_value"`
	EquityValue     float64 `json:"equity_value"`
	MortgageBalance float64 `json:"mortgage_balance"`
	OutflowBuy      float64 `json:"outflow_buy"`
	OutflowRent     float64 `json:"outflow_rent"`
	NetBuy          float64 `json:"net_buy"`
	NetRent         float64 `json:"net_rent"`
	NetRentSavings  float64 `json:"net_rent_savings"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string            `json:"name"`
	Summary SimulationSummary `json:"summary"`
}

// SweepResponse represents the response from a sensitivity sweep
type SweepResponse struct {
	Parameter string       `json:"parameter"`
	Points    []SweepPoint `json:"points"`
}

// SweepPoint contains the outcome of one swept value
type SweepPoint struct {
	Value           float64  `json:"value"`
	MonthlyPayment  float64  `json:"monthly_payment"`
	FinalNetBuy     float64  `json:"final_net_buy"`
	FinalNetRent    float64  `json:"final_net_rent"`
	FinalDifference float64  `json:"final_difference"`
	Winner          string   `json:"winner"`
	BreakevenYear   *float64 `json:"breakeven_year,omitempty"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	File   string         `json:"file"`
	Params ScenarioParams `json:"params"`
}

// ScenarioParams contains the headline parameters of a preset
type ScenarioParams struct {
	DurationYears  int     `json:"duration_years"`
	PropertyPrice  float64 `json:"property_price"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	MonthlyRent    float64 `json:"monthly_rent"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
