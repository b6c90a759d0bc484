package analysis

import (
	"fmt"

	"rentorbuy/internal/model"
	"rentorbuy/internal/sim"
)

// Parameter names a single SimulationConfig field a sweep can vary.
// Keep these values stable; they are the wire names used by the API and CLI.
type Parameter string

const (
	ParamDownPaymentPct             Parameter = "down_payment_pct"
	ParamMortgageRateAnnual         Parameter = "mortgage_rate_annual"
	ParamPropertyAppreciationAnnual Parameter = "property_appreciation_annual"
	ParamEquityGrowthAnnual         Parameter = "equity_growth_annual"
	ParamMonthlyRent                Parameter = "monthly_rent"
	ParamRentInflationAnnual        Parameter = "rent_inflation_annual"
)

// SweepPoint is the outcome of one engine run within a sweep.
type SweepPoint struct {
	Value float64

	MonthlyPayment  float64
	FinalNetBuy     float64
	FinalNetRent    float64
	FinalDifference float64

	Winner        model.Winner
	BreakevenYear *float64
}

// Sweep re-runs the simulation with param set to each value in turn, leaving
// every other field of base untouched. Points come back in input order. Each
// varied configuration is validated; a value that produces an invalid config
// fails the whole sweep rather than being skipped silently.
func Sweep(base model.SimulationConfig, param Parameter, values []float64) ([]SweepPoint, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to sweep")
	}

	engine := sim.New()
	points := make([]SweepPoint, 0, len(values))

	for _, v := range values {
		varied := base
		if err := apply(&varied, param, v); err != nil {
			return nil, err
		}

		cfg, err := model.NewSimulationConfig(varied)
		if err != nil {
			return nil, fmt.Errorf("%s=%v: %w", param, v, err)
		}

		res, err := engine.Run(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s=%v: %w", param, v, err)
		}

		points = append(points, SweepPoint{
			Value:           v,
			MonthlyPayment:  res.MonthlyPayment,
			FinalNetBuy:     res.FinalNetBuy,
			FinalNetRent:    res.FinalNetRent,
			FinalDifference: res.FinalDifference,
			Winner:          res.Winner,
			BreakevenYear:   res.BreakevenYear,
		})
	}

	return points, nil
}

func apply(cfg *model.SimulationConfig, param Parameter, v float64) error {
	switch param {
	case ParamDownPaymentPct:
		cfg.DownPaymentPct = v
	case ParamMortgageRateAnnual:
		cfg.MortgageRateAnnual = v
	case ParamPropertyAppreciationAnnual:
		cfg.PropertyAppreciationAnnual = v
	case ParamEquityGrowthAnnual:
		cfg.EquityGrowthAnnual = v
	case ParamMonthlyRent:
		cfg.MonthlyRent = v
	case ParamRentInflationAnnual:
		cfg.RentInflationAnnual = v
	default:
		return fmt.Errorf("unsupported sweep parameter: %q", param)
	}
	return nil
}
