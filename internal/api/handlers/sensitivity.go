package handlers

import (
	"net/http"

	"rentorbuy/internal/analysis"
	"rentorbuy/internal/api/models"
	"rentorbuy/internal/model"

	"github.com/gin-gonic/gin"
)

// SensitivityHandler handles sensitivity sweep requests
type SensitivityHandler struct{}

// NewSensitivityHandler creates a new sensitivity handler
func NewSensitivityHandler() *SensitivityHandler {
	return &SensitivityHandler{}
}

// RunSweep handles POST /api/v1/sensitivity
func (h *SensitivityHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base := model.SimulationConfig{
		DurationYears:              req.Config.DurationYears,
		PropertyPrice:              req.Config.PropertyPrice,
		DownPaymentPct:             req.Config.DownPaymentPct,
		MortgageRateAnnual:         req.Config.MortgageRateAnnual,
		PropertyAppreciationAnnual: req.Config.PropertyAppreciationAnnual,
		EquityGrowthAnnual:         req.Config.EquityGrowthAnnual,
		MonthlyRent:                req.Config.MonthlyRent,
		RentInflationAnnual:        req.Config.RentInflationAnnual,
	}

	points, err := analysis.Sweep(base, analysis.Parameter(req.Parameter), req.Values)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SWEEP",
				Message: err.Error(),
			},
		})
		return
	}

	out := make([]models.SweepPoint, len(points))
	for i, p := range points {
		out[i] = models.SweepPoint{
			Value:           p.Value,
			MonthlyPayment:  p.MonthlyPayment,
			FinalNetBuy:     p.FinalNetBuy,
			FinalNetRent:    p.FinalNetRent,
			FinalDifference: p.FinalDifference,
			Winner:          string(p.Winner),
			BreakevenYear:   p.BreakevenYear,
		}
	}

	c.JSON(http.StatusOK, models.SweepResponse{
		Parameter: req.Parameter,
		Points:    out,
	})
}
