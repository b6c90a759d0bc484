package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rentorbuy/internal/api/models"
	"rentorbuy/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	dir := ScenarioDir()
	log.Printf("ScenarioHandler: using scenario directory: %s", dir)
	return &ScenarioHandler{scenarioDir: dir}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenarioHandler: failed to read scenario directory %s: %v", h.scenarioDir, err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.scenarioDir, entry.Name())
		info, err := loadScenarioInfo(path, entry.Name())
		if err != nil {
			log.Printf("ScenarioHandler: failed to load scenario file %s: %v", path, err)
			continue // Skip invalid files
		}

		scenarios = append(scenarios, *info)
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

func loadScenarioInfo(path, filename string) (*models.ScenarioInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Scenario config.ScenarioConfig `yaml:"scenario"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	// Keep the filename without extension as the ID (e.g. "baseline.yaml"
	// -> "baseline"); it doubles as the scenario_file request value.
	id := strings.TrimSuffix(filename, ".yaml")

	name := wrapper.Scenario.Name
	if name == "" {
		name = id
	}

	return &models.ScenarioInfo{
		ID:   id,
		Name: name,
		File: path,
		Params: models.ScenarioParams{
			DurationYears:  wrapper.Scenario.DurationYears,
			PropertyPrice:  wrapper.Scenario.PropertyPrice,
			DownPaymentPct: wrapper.Scenario.DownPaymentPct,
			MonthlyRent:    wrapper.Scenario.MonthlyRent,
		},
	}, nil
}
