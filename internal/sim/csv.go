package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteSeriesCSV(path string, rows []MonthRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"year",
		"home_value",
		"equity_value",
		"mortgage_balance",
		"outflow_buy",
		"outflow_rent",
		"net_buy",
		"net_rent",
		"net_rent_savings",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Month),
			fmtFloat(r.Year),
			fmtFloat(r.HomeValue),
			fmtFloat(r.EquityValue),
			fmtFloat(r.MortgageBalance),
			fmtFloat(r.OutflowBuy),
			fmtFloat(r.OutflowRent),
			fmtFloat(r.NetBuy),
			fmtFloat(r.NetRent),
			fmtFloat(r.NetRentSavings),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
