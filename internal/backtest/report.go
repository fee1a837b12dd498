package backtest

import "github.com/shopspring/decimal"

// FormatMoney renders v with two decimals, rounding half away from zero.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// PNLLine is the one-line cumulative profit report printed after a run.
func (r *Result) PNLLine() string {
	return "Cumulative Trading Profit/Loss: $" + FormatMoney(r.TotalPNL)
}
