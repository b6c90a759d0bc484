package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"rentorbuy/internal/api/models"
	"rentorbuy/internal/config"
	"rentorbuy/internal/model"
	"rentorbuy/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation-related requests
type SimulateHandler struct {
	engine *sim.Engine
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{engine: sim.New()}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.buildConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := h.run(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, h.buildResponse(cfg, result, req.Options))
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))

	for _, variation := range req.Variations {
		merged := mergeConfig(req.BaseConfig, variation.Config)

		cfg, err := h.buildConfig(merged)
		if err != nil {
			log.Printf("SimulateHandler: skipping variation %q: %v", variation.Name, err)
			continue
		}

		result, err := h.run(cfg)
		if err != nil {
			log.Printf("SimulateHandler: variation %q failed: %v", variation.Name, err)
			continue
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(cfg, result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// run computes a result, going through the opt-in memoization cache when it
// is enabled.
func (h *SimulateHandler) run(cfg *model.SimulationConfig) (*sim.Result, error) {
	cache := sim.GetCache()
	key := sim.CacheKey(*cfg)
	if res, ok := cache.Get(key); ok {
		return res, nil
	}

	res, err := h.engine.Run(cfg)
	if err != nil {
		return nil, err
	}
	cache.Set(key, res)
	return res, nil
}

// buildConfig resolves an optional scenario preset and applies request
// overrides on top, then validates the combined parameters.
func (h *SimulateHandler) buildConfig(req models.SimulationConfig) (*model.SimulationConfig, error) {
	scenario := config.ScenarioConfig{
		Name:                       req.Name,
		DurationYears:              req.DurationYears,
		PropertyPrice:              req.PropertyPrice,
		DownPaymentPct:             req.DownPaymentPct,
		MortgageRateAnnual:         req.MortgageRateAnnual,
		PropertyAppreciationAnnual: req.PropertyAppreciationAnnual,
		EquityGrowthAnnual:         req.EquityGrowthAnnual,
		MonthlyRent:                req.MonthlyRent,
		RentInflationAnnual:        req.RentInflationAnnual,
	}

	if req.ScenarioFile != "" {
		// scenario_file is just the preset name (e.g. "baseline"); files are
		// looked up in the scenario directory.
		path := filepath.Join(ScenarioDir(), req.ScenarioFile+".yaml")
		loaded, err := config.LoadUnchecked(path)
		if err == nil {
			scenario = config.MergeScenario(loaded.Scenario, scenario)
		} else {
			log.Printf("SimulateHandler: failed to load scenario file %s: %v", path, err)
		}
	}

	return model.NewSimulationConfig(scenario.ToModel())
}

// mergeConfig overlays non-zero variation fields onto the base request config.
func mergeConfig(base, override models.SimulationConfig) models.SimulationConfig {
	merged := base
	if override.ScenarioFile != "" {
		merged.ScenarioFile = override.ScenarioFile
	}
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.DurationYears != 0 {
		merged.DurationYears = override.DurationYears
	}
	if override.PropertyPrice != 0 {
		merged.PropertyPrice = override.PropertyPrice
	}
	if override.DownPaymentPct != 0 {
		merged.DownPaymentPct = override.DownPaymentPct
	}
	if override.MortgageRateAnnual != 0 {
		merged.MortgageRateAnnual = override.MortgageRateAnnual
	}
	if override.PropertyAppreciationAnnual != 0 {
		merged.PropertyAppreciationAnnual = override.PropertyAppreciationAnnual
	}
	if override.EquityGrowthAnnual != 0 {
		merged.EquityGrowthAnnual = override.EquityGrowthAnnual
	}
	if override.MonthlyRent != 0 {
		merged.MonthlyRent = override.MonthlyRent
	}
	if override.RentInflationAnnual != 0 {
		merged.RentInflationAnnual = override.RentInflationAnnual
	}
	return merged
}

func (h *SimulateHandler) buildResponse(cfg *model.SimulationConfig, result *sim.Result, opts models.SimulateOptions) models.SimulateResponse {
	response := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(cfg, result),
	}

	if opts.IncludeSeries {
		rows := result.Rows
		if opts.LimitMonths > 0 && opts.LimitMonths+1 < len(rows) {
			rows = rows[:opts.LimitMonths+1]
		}
		response.Series = convertSeries(rows)
	}

	return response
}

func buildSummary(cfg *model.SimulationConfig, result *sim.Result) models.SimulationSummary {
	return models.SimulationSummary{
		Months:         cfg.Months(),
		DownPayment:    result.DownPayment,
		LoanAmount:     result.LoanAmount,
		MonthlyPayment: result.MonthlyPayment,
		LeverageRatio:  cfg.LeverageRatio(),

		FinalNetBuy:         result.FinalNetBuy,
		FinalNetRent:        result.FinalNetRent,
		FinalNetRentSavings: result.FinalNetRentSavings,
		FinalDifference:     result.FinalDifference,

		Winner: string(result.Winner),

		BreakevenYear:          result.BreakevenYear,
		BreakevenYearVsSavings: result.BreakevenYearVsSavings,
	}
}

func convertSeries(rows []sim.MonthRow) []models.MonthRow {
	out := make([]models.MonthRow, len(rows))
	for i, r := range rows {
		out[i] = models.MonthRow{
			Month:           r.Month,
			Year:            r.Year,
			HomeValue:       r.HomeValue,
			EquityValue:     r.EquityValue,
			MortgageBalance: r.MortgageBalance,
			OutflowBuy:      r.OutflowBuy,
			OutflowRent:     r.OutflowRent,
			NetBuy:          r.NetBuy,
			NetRent:         r.NetRent,
			NetRentSavings:  r.NetRentSavings,
		}
	}
	return out
}

// ScenarioDir resolves the scenario preset directory, preferring the
// SCENARIO_DIR environment variable.
func ScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}
