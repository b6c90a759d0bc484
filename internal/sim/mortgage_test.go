package sim

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name        string
		principal   float64
		monthlyRate float64
		months      int
		want        float64
		tolerance   float64
	}{
		{
			name:        "standard 30yr at 4.5%",
			principal:   400000,
			monthlyRate: 0.045 / 12,
			months:      360,
			want:        2026.74,
			tolerance:   0.01,
		},
		{
			name:        "15yr at 6%",
			principal:   200000,
			monthlyRate: 0.06 / 12,
			months:      180,
			want:        1687.71,
			tolerance:   0.01,
		},
		{
			name:        "zero rate pays linearly",
			principal:   288000,
			monthlyRate: 0,
			months:      360,
			want:        800,
			tolerance:   0,
		},
		{
			name:        "zero principal needs no payment",
			principal:   0,
			monthlyRate: 0.00375,
			months:      360,
			want:        0,
			tolerance:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.monthlyRate, tt.months)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MonthlyPayment(%v, %v, %d) = %v, want %v ± %v",
					tt.principal, tt.monthlyRate, tt.months, got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestRemainingBalanceStartsAtPrincipal(t *testing.T) {
	principal := 400000.0
	rate := 0.045 / 12
	months := 360
	payment := MonthlyPayment(principal, rate, months)

	got := RemainingBalance(payment, rate, months)
	if relErr := math.Abs(got-principal) / principal; relErr > 1e-9 {
		t.Errorf("balance before any payment = %v, want %v (rel err %g)", got, principal, relErr)
	}
}

func TestRemainingBalanceReachesZero(t *testing.T) {
	payment := MonthlyPayment(400000, 0.045/12, 360)
	if got := RemainingBalance(payment, 0.045/12, 0); got != 0 {
		t.Errorf("balance at horizon = %v, want exactly 0", got)
	}
}

func TestRemainingBalanceZeroRateIsLinear(t *testing.T) {
	payment := 800.0
	for _, remaining := range []int{0, 1, 120, 360} {
		got := RemainingBalance(payment, 0, remaining)
		want := payment * float64(remaining)
		if got != want {
			t.Errorf("RemainingBalance(%v, 0, %d) = %v, want %v", payment, remaining, got, want)
		}
	}
}

func TestRemainingBalanceDecreasesMonotonically(t *testing.T) {
	rate := 0.06 / 12
	months := 180
	payment := MonthlyPayment(250000, rate, months)

	prev := math.Inf(1)
	for m := months; m >= 0; m-- {
		bal := RemainingBalance(payment, rate, m)
		if bal >= prev {
			t.Fatalf("balance not strictly decreasing: %v then %v with %d months left", prev, bal, m)
		}
		prev = bal
	}
}
