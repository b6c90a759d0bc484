package main

import (
	"flag"
	"fmt"

	"rentorbuy/internal/config"
	"rentorbuy/internal/model"
	"rentorbuy/internal/report"
	"rentorbuy/internal/sim"
)

// Demo:
// - Build a baseline scenario (or load one via --config)
// - Run the engine and print the first year of the monthly series
// - Print the summary block to show how the models fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 13, "Number of monthly rows to print")
	outCSV := flag.String("out", "", "Optional path to write the series CSV (e.g. results/series.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	params := model.SimulationConfig{
		DurationYears:              30,
		PropertyPrice:              500000,
		DownPaymentPct:             20,
		MortgageRateAnnual:         4.5,
		PropertyAppreciationAnnual: 3.0,
		EquityGrowthAnnual:         7.0,
		MonthlyRent:                2000,
		RentInflationAnnual:        3.0,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Scenario.ToModel()
	}

	simCfg, err := model.NewSimulationConfig(params)
	if err != nil {
		panic(err)
	}

	engine := sim.New()
	result, err := engine.Run(simCfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulating %d months, down payment $%.0f on a $%.0f property\n\n",
		simCfg.Months(), result.DownPayment, simCfg.PropertyPrice)

	for i := 0; i < min(*n, len(result.Rows)); i++ {
		r := result.Rows[i]
		fmt.Printf(
			"m=%3d  home=%11.2f  equity=%10.2f  balance=%11.2f  out_buy=%11.2f  out_rent=%10.2f  net_buy=%11.2f  net_rent=%10.2f\n",
			r.Month,
			r.HomeValue,
			r.EquityValue,
			r.MortgageBalance,
			r.OutflowBuy,
			r.OutflowRent,
			r.NetBuy,
			r.NetRent,
		)
	}
	fmt.Println()

	if *outCSV != "" {
		if err := sim.WriteSeriesCSV(*outCSV, result.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote CSV: %s\n\n", *outCSV)
	}

	fmt.Print(report.Summary(simCfg, result))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
