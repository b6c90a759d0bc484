package sim

import (
	"fmt"
	"math"

	"rentorbuy/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run computes the monthly series for both strategies over the full horizon.
//
// Both scenarios start from the same capital: the buyer puts the down payment
// into the property, the renter puts it into equities (or, for the savings
// variant, keeps it as cash). All growth rates compound monthly as
// (1 + annual/12)^t. Cumulative rent is a running sum over the discrete rent
// series, shifted so no rent has been paid at month 0; the closed-form
// geometric sum is deliberately not used so the rounding matches a running
// accumulation.
//
// Run has no failure path for a validated config; non-finite intermediate
// values propagate into the result untouched.
func (e *Engine) Run(cfg *model.SimulationConfig) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	n := cfg.Months()
	down := cfg.DownPayment()
	loan := cfg.LoanAmount()
	monthlyRate := cfg.MonthlyMortgageRate()
	payment := MonthlyPayment(loan, monthlyRate, n)

	appreciation := cfg.PropertyAppreciationAnnual / 100 / 12
	growth := cfg.EquityGrowthAnnual / 100 / 12
	inflation := cfg.RentInflationAnnual / 100 / 12

	rows := make([]MonthRow, 0, n+1)
	cumRent := 0.0

	for t := 0; t <= n; t++ {
		ft := float64(t)

		homeValue := cfg.PropertyPrice * math.Pow(1+appreciation, ft)
		equityValue := down * math.Pow(1+growth, ft)
		outflowBuy := down + payment*ft

		row := MonthRow{
			Month: t,
			Year:  ft / 12,

			HomeValue:   homeValue,
			EquityValue: equityValue,

			MortgageBalance: RemainingBalance(payment, monthlyRate, n-t),

			OutflowBuy:  outflowBuy,
			OutflowRent: cumRent,

			NetBuy:         homeValue - outflowBuy,
			NetRent:        equityValue - cumRent,
			NetRentSavings: down - cumRent,
		}
		rows = append(rows, row)

		// Rent for month t is paid during month t, so it shows up in the
		// cumulative outflow from month t+1 on.
		cumRent += cfg.MonthlyRent * math.Pow(1+inflation, ft)
	}

	last := rows[len(rows)-1]
	diff := last.NetBuy - last.NetRent

	return &Result{
		Rows: rows,

		DownPayment:    down,
		LoanAmount:     loan,
		MonthlyPayment: payment,

		FinalNetBuy:         last.NetBuy,
		FinalNetRent:        last.NetRent,
		FinalNetRentSavings: last.NetRentSavings,
		FinalDifference:     diff,

		Winner: model.WinnerFromDifference(diff),

		BreakevenYear: findCrossingYear(rows, func(r MonthRow) float64 {
			return r.NetBuy - r.NetRent
		}),
		BreakevenYearVsSavings: findCrossingYear(rows, func(r MonthRow) float64 {
			return r.NetBuy - r.NetRentSavings
		}),
	}, nil
}
