package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"rentorbuy/internal/analysis"
	"rentorbuy/internal/config"
	"rentorbuy/internal/model"
	"rentorbuy/internal/report"
	"rentorbuy/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/series.csv")
	fmt.Println("  cli sweep --config examples/config.yaml --param down_payment_pct --values 10,20,30")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs one CSV row per month plus a printed summary")
	fmt.Println("  - sweep re-runs the simulation across values of one parameter")
	fmt.Println("  - all rates are percent form: 3.0 means 3% per year")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Output CSV path (overrides output.csv_path from config)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	simCfg, err := model.NewSimulationConfig(cfg.Scenario.ToModel())
	if err != nil {
		panic(err)
	}

	engine := sim.New()
	res, err := engine.Run(simCfg)
	if err != nil {
		panic(err)
	}

	csvPath := cfg.Output.CSVPath
	if *outPath != "" {
		csvPath = *outPath
	}
	if csvPath != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteSeriesCSV(csvPath, res.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n\n", len(res.Rows), csvPath)
	}

	fmt.Print(report.Summary(simCfg, res))
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	param := fs.String("param", string(analysis.ParamDownPaymentPct), "Parameter to vary")
	valuesArg := fs.String("values", "", "Comma-separated values to sweep")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	values, err := parseValues(*valuesArg)
	if err != nil {
		fmt.Printf("bad --values: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	points, err := analysis.Sweep(cfg.Scenario.ToModel(), analysis.Parameter(*param), values)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-12s %-14s %-16s %-16s %-16s %-6s %s\n",
		*param, "payment", "net_buy", "net_rent", "difference", "winner", "breakeven")
	for _, p := range points {
		breakeven := "-"
		if p.BreakevenYear != nil {
			breakeven = fmt.Sprintf("%.1fy", *p.BreakevenYear)
		}
		fmt.Printf("%-12.2f %-14s %-16s %-16s %-16s %-6s %s\n",
			p.Value,
			report.USD(p.MonthlyPayment),
			report.USD(p.FinalNetBuy),
			report.USD(p.FinalNetRent),
			report.USD(p.FinalDifference),
			p.Winner,
			breakeven,
		)
	}
}

func parseValues(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no values given")
	}
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
