package report

import (
	"fmt"
	"math"
	"strings"

	"rentorbuy/internal/model"
	"rentorbuy/internal/sim"

	"github.com/Rhymond/go-money"
)

// Summary renders a plain-text summary block for a finished simulation.
// Intended for CLI output; the API ships raw numbers instead.
func Summary(cfg *model.SimulationConfig, res *sim.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Buy vs. rent over %d years (%d monthly steps)\n", cfg.DurationYears, cfg.Months())
	fmt.Fprintf(&b, "  Property price:    %s\n", USD(cfg.PropertyPrice))
	fmt.Fprintf(&b, "  Down payment:      %s (%.1f%%, leverage %.2fx)\n",
		USD(res.DownPayment), cfg.DownPaymentPct, cfg.LeverageRatio())
	fmt.Fprintf(&b, "  Loan amount:       %s at %.2f%% annual\n", USD(res.LoanAmount), cfg.MortgageRateAnnual)
	fmt.Fprintf(&b, "  Monthly payment:   %s\n", USD(res.MonthlyPayment))
	fmt.Fprintf(&b, "  Starting rent:     %s (+%.2f%%/yr)\n", USD(cfg.MonthlyRent), cfg.RentInflationAnnual)
	b.WriteString("\n")

	fmt.Fprintf(&b, "  Final net value, buy:            %s\n", USD(res.FinalNetBuy))
	fmt.Fprintf(&b, "  Final net value, rent + invest:  %s\n", USD(res.FinalNetRent))
	fmt.Fprintf(&b, "  Final net value, rent + savings: %s\n", USD(res.FinalNetRentSavings))
	fmt.Fprintf(&b, "  Winner: %s by %s\n", res.Winner, USD(math.Abs(res.FinalDifference)))

	if res.BreakevenYear != nil {
		fmt.Fprintf(&b, "  Breakeven (buy vs. invest): %.1f years\n", *res.BreakevenYear)
	} else {
		b.WriteString("  Breakeven (buy vs. invest): none, one strategy dominates\n")
	}
	if res.BreakevenYearVsSavings != nil {
		fmt.Fprintf(&b, "  Breakeven (buy vs. savings): %.1f years\n", *res.BreakevenYearVsSavings)
	}

	return b.String()
}

// USD formats a dollar amount for display, rounded to the cent.
func USD(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.USD).Display()
}
