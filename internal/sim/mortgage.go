package sim

import "math"

// MonthlyPayment returns the fixed payment that amortizes principal over
// months at the given monthly rate (standard annuity formula).
// Degenerate cases: a zero rate pays the principal down linearly, and a zero
// principal (full down payment) needs no payment at all.
func MonthlyPayment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 || principal <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * growth / (growth - 1)
}

// RemainingBalance returns the loan balance with remainingMonths payments
// left, i.e. the present value of those payments at the monthly rate.
// This is exactly zero at the horizon. With a zero rate the balance is the
// undiscounted sum of the remaining payments.
func RemainingBalance(payment, monthlyRate float64, remainingMonths int) float64 {
	if remainingMonths <= 0 || payment == 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(remainingMonths)
	}
	return payment * (1 - math.Pow(1+monthlyRate, -float64(remainingMonths))) / monthlyRate
}
