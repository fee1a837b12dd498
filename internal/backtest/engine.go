package backtest

import (
	"fmt"

	"quantlab/internal/model"
	"quantlab/internal/strategy"
)

// Params configures a simulation run.
type Params struct {
	InitialCash float64
	Rule        strategy.Params
}

func DefaultParams() Params {
	return Params{
		InitialCash: 10000,
		Rule:        strategy.DefaultParams(),
	}
}

// Validate rejects parameters the rule cannot trade with.
func (p Params) Validate() error {
	if p.InitialCash <= 0 {
		return fmt.Errorf("initial cash must be > 0, got %v", p.InitialCash)
	}
	if p.Rule.TradeLot <= 0 {
		return fmt.Errorf("trade lot must be > 0, got %d", p.Rule.TradeLot)
	}
	if p.Rule.MaxLots <= 0 {
		return fmt.Errorf("max lots must be > 0, got %d", p.Rule.MaxLots)
	}
	return nil
}

type Engine struct {
	params Params
	rule   strategy.Rule
}

func New(p Params) *Engine {
	return &Engine{params: p, rule: strategy.NewRule(p.Rule)}
}

func (e *Engine) Params() Params { return e.params }

// Run validates the series and parameters, then simulates.
func (e *Engine) Run(series model.PriceSeries) (*Result, error) {
	if err := e.params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	return e.simulate(series), nil
}

// Simulate runs the rule with default parameters over a non-empty series.
// Callers must validate the series first.
func Simulate(series model.PriceSeries) *Result {
	return New(DefaultParams()).simulate(series)
}

func (e *Engine) simulate(series model.PriceSeries) *Result {
	prices := series.Prices()
	ledger := make([]LedgerRow, 0, len(series))
	pos := strategy.Position{Cash: e.params.InitialCash}

	for i, pt := range series {
		d := e.rule.Decide(prices, i, pos)
		pos = pos.Apply(d.Signal, pt.Price, e.params.Rule.TradeLot)

		ledger = append(ledger, LedgerRow{
			Index:        i,
			Date:         pt.Date,
			Price:        pt.Price,
			Signal:       d.Signal,
			Reason:       d.Reason,
			Position:     pos.Shares,
			Cash:         pos.Cash,
			AccountValue: pos.Value(pt.Price),
		})
	}

	final := ledger[len(ledger)-1].AccountValue
	return &Result{
		Ledger:      ledger,
		InitialCash: e.params.InitialCash,
		FinalCash:   pos.Cash,
		FinalValue:  final,
		TotalPNL:    final - e.params.InitialCash,
	}
}
