package analysis

import (
	"math"

	"quantlab/internal/backtest"
	"quantlab/internal/model"
	"quantlab/internal/strategy"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultSmoothingWindow is the rolling-mean window used for the P&L chart.
const DefaultSmoothingWindow = 5

// Summary condenses a simulation ledger.
type Summary struct {
	Steps       int
	Buys        int
	Sells       int
	ForcedExits int

	InitialCash float64
	FinalValue  float64
	TotalPNL    float64
	PeakValue   float64

	// MaxDrawdown is the largest fall of account value from a running peak,
	// as a fraction of that peak.
	MaxDrawdown float64

	// MeanReturn and StdReturn describe step-over-step account value returns.
	MeanReturn float64
	StdReturn  float64
}

func Summarize(res *backtest.Result) Summary {
	s := Summary{
		Steps:       len(res.Ledger),
		InitialCash: res.InitialCash,
		FinalValue:  res.FinalValue,
		TotalPNL:    res.TotalPNL,
	}
	if len(res.Ledger) == 0 {
		return s
	}

	values := make([]float64, len(res.Ledger))
	for i, row := range res.Ledger {
		values[i] = row.AccountValue
		switch row.Signal {
		case model.SignalBuy:
			s.Buys++
		case model.SignalSell:
			s.Sells++
			if row.Reason == strategy.ReasonFinalExit {
				s.ForcedExits++
			}
		}
	}

	s.PeakValue = floats.Max(values)
	s.MaxDrawdown = maxDrawdown(values)

	returns := stepReturns(values)
	switch len(returns) {
	case 0:
	case 1:
		s.MeanReturn = returns[0]
	default:
		s.MeanReturn, s.StdReturn = stat.MeanStdDev(returns, nil)
	}
	return s
}

// SmoothedPNL is the rolling mean of cumulative P&L (account value minus
// initial cash) over window steps. Leading steps average whatever is
// available, so the output has one value per ledger row.
func SmoothedPNL(res *backtest.Result, window int) []float64 {
	if window < 1 {
		window = 1
	}
	pnl := make([]float64, len(res.Ledger))
	for i, row := range res.Ledger {
		pnl[i] = row.AccountValue - res.InitialCash
	}
	out := make([]float64, len(pnl))
	for i := range pnl {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		out[i] = stat.Mean(pnl[lo:i+1], nil)
	}
	return out
}

func maxDrawdown(values []float64) float64 {
	peak := math.Inf(-1)
	worst := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

func stepReturns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		out = append(out, values[i]/values[i-1]-1)
	}
	return out
}
