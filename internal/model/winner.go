package model

// Winner labels the strategy with the higher final net value.
// Keep these values stable; they are intended for CSV/JSON output.
type Winner string

const (
	WinnerBuy  Winner = "BUY"
	WinnerRent Winner = "RENT"
)

// WinnerFromDifference maps final_net_buy - final_net_rent to a label.
// A tie goes to RENT: buying only wins when it is strictly ahead.
func WinnerFromDifference(difference float64) Winner {
	if difference > 0 {
		return WinnerBuy
	}
	return WinnerRent
}
