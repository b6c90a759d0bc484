package analysis

import (
	"strings"
	"testing"

	"rentorbuy/internal/model"
)

func baseConfig() model.SimulationConfig {
	return model.SimulationConfig{
		DurationYears:              30,
		PropertyPrice:              500000,
		DownPaymentPct:             20,
		MortgageRateAnnual:         4.5,
		PropertyAppreciationAnnual: 3.0,
		EquityGrowthAnnual:         7.0,
		MonthlyRent:                2000,
		RentInflationAnnual:        3.0,
	}
}

func TestSweepDownPayment(t *testing.T) {
	values := []float64{10, 20, 50, 100}

	points, err := Sweep(baseConfig(), ParamDownPaymentPct, values)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(points) != len(values) {
		t.Fatalf("got %d points, want %d", len(points), len(values))
	}
	for i, p := range points {
		if p.Value != values[i] {
			t.Errorf("point %d: Value = %v, want %v (input order)", i, p.Value, values[i])
		}
	}

	// A bigger down payment always means a smaller mortgage payment.
	for i := 1; i < len(points); i++ {
		if points[i].MonthlyPayment >= points[i-1].MonthlyPayment {
			t.Errorf("MonthlyPayment did not fall: %v then %v",
				points[i-1].MonthlyPayment, points[i].MonthlyPayment)
		}
	}
	if last := points[len(points)-1]; last.MonthlyPayment != 0 {
		t.Errorf("full down payment should have zero monthly payment, got %v", last.MonthlyPayment)
	}
}

func TestSweepMortgageRateMonotone(t *testing.T) {
	points, err := Sweep(baseConfig(), ParamMortgageRateAnnual, []float64{0, 3, 6, 9})
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].MonthlyPayment <= points[i-1].MonthlyPayment {
			t.Errorf("MonthlyPayment did not rise with the rate: %v then %v",
				points[i-1].MonthlyPayment, points[i].MonthlyPayment)
		}
		if points[i].FinalNetBuy >= points[i-1].FinalNetBuy {
			t.Errorf("FinalNetBuy did not fall with the rate: %v then %v",
				points[i-1].FinalNetBuy, points[i].FinalNetBuy)
		}
	}
}

func TestSweepBaseUntouched(t *testing.T) {
	base := baseConfig()
	if _, err := Sweep(base, ParamMonthlyRent, []float64{1000, 3000}); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if base.MonthlyRent != 2000 {
		t.Errorf("sweep mutated the base config: MonthlyRent = %v", base.MonthlyRent)
	}
}

func TestSweepUnsupportedParameter(t *testing.T) {
	_, err := Sweep(baseConfig(), Parameter("property_price"), []float64{1})
	if err == nil {
		t.Fatal("expected error for unsupported parameter")
	}
	if !strings.Contains(err.Error(), "property_price") {
		t.Errorf("error %q does not name the parameter", err)
	}
}

func TestSweepInvalidValueFailsWhole(t *testing.T) {
	if _, err := Sweep(baseConfig(), ParamDownPaymentPct, []float64{20, 150}); err == nil {
		t.Fatal("expected error for a value producing an invalid config")
	}
}

func TestSweepEmptyValues(t *testing.T) {
	if _, err := Sweep(baseConfig(), ParamMonthlyRent, nil); err == nil {
		t.Fatal("expected error for empty value list")
	}
}
