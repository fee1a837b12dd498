package strategy

import "quantlab/internal/model"

// Window lengths of the consecutive-move rule.
const (
	// BuyRun is how many strictly increasing closes (ending at the current
	// step) trigger a buy.
	BuyRun = 4
	// SellRun is how many strictly decreasing closes trigger a sell.
	SellRun = 3
)

// Params sizes the trades placed by the rule.
type Params struct {
	// TradeLot is the number of shares bought per buy signal.
	TradeLot int
	// MaxLots caps the position at MaxLots*TradeLot shares.
	MaxLots int
}

func DefaultParams() Params {
	return Params{TradeLot: 10, MaxLots: 2}
}

func (p Params) MaxShares() int { return p.TradeLot * p.MaxLots }

// Reason explains why a step produced its signal.
type Reason string

const (
	ReasonNone       Reason = "none"
	ReasonRisingRun  Reason = "rising_run"
	ReasonFallingRun Reason = "falling_run"
	ReasonFinalExit  Reason = "final_exit"
)

// Decision is the outcome of evaluating the rule at one index.
type Decision struct {
	Signal model.Signal
	Reason Reason
}

// Rule is the consecutive-move trading rule. Evaluation order is strict:
// buy on a rising run, else sell on a falling run, else liquidate on the last
// index, else hold.
type Rule struct {
	Params Params
}

func NewRule(p Params) Rule { return Rule{Params: p} }

func (r Rule) Name() string { return "consecutive_moves" }

// Decide evaluates the rule at index i of prices given the position held
// before the step.
func (r Rule) Decide(prices []float64, i int, pos Position) Decision {
	switch {
	case risingRun(prices, i, BuyRun) && pos.Shares < r.Params.MaxShares():
		return Decision{Signal: model.SignalBuy, Reason: ReasonRisingRun}
	case fallingRun(prices, i, SellRun) && pos.Shares > 0:
		return Decision{Signal: model.SignalSell, Reason: ReasonFallingRun}
	case i == len(prices)-1 && pos.Shares > 0:
		return Decision{Signal: model.SignalSell, Reason: ReasonFinalExit}
	}
	return Decision{Signal: model.SignalHold, Reason: ReasonNone}
}

// risingRun reports whether prices[i-n+1..i] is strictly increasing.
func risingRun(prices []float64, i, n int) bool {
	if i < n-1 {
		return false
	}
	for k := i - n + 2; k <= i; k++ {
		if !(prices[k-1] < prices[k]) {
			return false
		}
	}
	return true
}

// fallingRun reports whether prices[i-n+1..i] is strictly decreasing.
func fallingRun(prices []float64, i, n int) bool {
	if i < n-1 {
		return false
	}
	for k := i - n + 2; k <= i; k++ {
		if !(prices[k-1] > prices[k]) {
			return false
		}
	}
	return true
}
