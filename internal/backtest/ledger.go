package backtest

import (
	"quantlab/internal/model"
	"quantlab/internal/strategy"
)

// LedgerRow is one row of per-step output.
// Position and AccountValue are post-step; AccountValue is marked to market.
type LedgerRow struct {
	Index int
	Date  string
	Price float64

	Signal model.Signal
	Reason strategy.Reason

	Position     int
	Cash         float64
	AccountValue float64
}

type Result struct {
	Ledger      []LedgerRow
	InitialCash float64
	FinalCash   float64
	FinalValue  float64
	TotalPNL    float64
}

// Signals returns the signal column.
func (r *Result) Signals() []model.Signal {
	out := make([]model.Signal, len(r.Ledger))
	for i, row := range r.Ledger {
		out[i] = row.Signal
	}
	return out
}

// Positions returns the post-step share count column.
func (r *Result) Positions() []int {
	out := make([]int, len(r.Ledger))
	for i, row := range r.Ledger {
		out[i] = row.Position
	}
	return out
}
