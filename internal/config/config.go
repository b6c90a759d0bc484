package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rentorbuy/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load scenario parameters from a separate YAML
	// (e.g. examples/scenarios/*.yaml). If both ScenarioFile and Scenario
	// are provided, Scenario overrides ScenarioFile.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
	Output       OutputConfig   `yaml:"output"`
}

type ScenarioConfig struct {
	Name                       string  `yaml:"name"`
	DurationYears              int     `yaml:"duration_years"`
	PropertyPrice              float64 `yaml:"property_price"`
	DownPaymentPct             float64 `yaml:"down_payment_pct"`
	MortgageRateAnnual         float64 `yaml:"mortgage_rate_annual"`
	PropertyAppreciationAnnual float64 `yaml:"property_appreciation_annual"`
	EquityGrowthAnnual         float64 `yaml:"equity_growth_annual"`
	MonthlyRent                float64 `yaml:"monthly_rent"`
	RentInflationAnnual        float64 `yaml:"rent_inflation_annual"`
}

type OutputConfig struct {
	CSVPath string `yaml:"csv_path"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides
	// from c.Scenario.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := loadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate scenario params by constructing a model.SimulationConfig.
	if _, err := model.NewSimulationConfig(c.Scenario.ToModel()); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

func (s ScenarioConfig) ToModel() model.SimulationConfig {
	return model.SimulationConfig{
		DurationYears:              s.DurationYears,
		PropertyPrice:              s.PropertyPrice,
		DownPaymentPct:             s.DownPaymentPct,
		MortgageRateAnnual:         s.MortgageRateAnnual,
		PropertyAppreciationAnnual: s.PropertyAppreciationAnnual,
		EquityGrowthAnnual:         s.EquityGrowthAnnual,
		MonthlyRent:                s.MonthlyRent,
		RentInflationAnnual:        s.RentInflationAnnual,
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

func loadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario file and then applying overrides from
// the request or CLI flags. Zero is a valid value for the growth/inflation
// rates, but a zero override is indistinguishable from "not provided", so
// scenario files should carry those fields explicitly when they matter.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.DurationYears != 0 {
		out.DurationYears = override.DurationYears
	}
	if override.PropertyPrice != 0 {
		out.PropertyPrice = override.PropertyPrice
	}
	if override.DownPaymentPct != 0 {
		out.DownPaymentPct = override.DownPaymentPct
	}
	if override.MortgageRateAnnual != 0 {
		out.MortgageRateAnnual = override.MortgageRateAnnual
	}
	if override.PropertyAppreciationAnnual != 0 {
		out.PropertyAppreciationAnnual = override.PropertyAppreciationAnnual
	}
	if override.EquityGrowthAnnual != 0 {
		out.EquityGrowthAnnual = override.EquityGrowthAnnual
	}
	if override.MonthlyRent != 0 {
		out.MonthlyRent = override.MonthlyRent
	}
	if override.RentInflationAnnual != 0 {
		out.RentInflationAnnual = override.RentInflationAnnual
	}
	return out
}
