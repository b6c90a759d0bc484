package sim

import "rentorbuy/internal/model"

// MonthRow is one row of per-month output.
// This is the primary artifact for "what happened" in a simulation.
type MonthRow struct {
	Month int
	Year  float64

	HomeValue   float64
	EquityValue float64

	MortgageBalance float64

	OutflowBuy  float64
	OutflowRent float64

	NetBuy  float64
	NetRent float64

	// NetRentSavings is the rent scenario with the down payment held as cash
	// (0% growth) instead of invested.
	NetRentSavings float64
}

// Result is the full monthly series plus the summary scalars derived from it.
// Assembled once per Engine.Run and not mutated afterwards.
type Result struct {
	Rows []MonthRow

	DownPayment    float64
	LoanAmount     float64
	MonthlyPayment float64

	FinalNetBuy         float64
	FinalNetRent        float64
	FinalNetRentSavings float64
	FinalDifference     float64

	Winner model.Winner

	// BreakevenYear is nil when the buy and rent-and-invest curves never
	// cross inside the horizon.
	BreakevenYear *float64

	// BreakevenYearVsSavings compares buying against the rent-and-save
	// variant instead.
	BreakevenYearVsSavings *float64
}
