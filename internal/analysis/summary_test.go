package analysis

import (
	"testing"

	"quantlab/internal/backtest"
	"quantlab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioPrices = []float64{98, 100, 102, 104, 103, 101, 99, 100, 102, 104, 106, 107, 105}

func TestSummarize(t *testing.T) {
	res := backtest.Simulate(model.SeriesFromPrices(scenarioPrices))
	s := Summarize(res)

	assert.Equal(t, 13, s.Steps)
	assert.Equal(t, 3, s.Buys)
	assert.Equal(t, 2, s.Sells)
	assert.Equal(t, 1, s.ForcedExits)
	assert.InDelta(t, -30.0, s.TotalPNL, 1e-9)
	assert.InDelta(t, 10010.0, s.PeakValue, 1e-9) // 7870 + 20*107
	assert.InDelta(t, (10010.0-9970.0)/10010.0, s.MaxDrawdown, 1e-12)
	assert.Greater(t, s.StdReturn, 0.0)
}

func TestSummarize_Flat(t *testing.T) {
	res := backtest.Simulate(model.SeriesFromPrices([]float64{5}))
	s := Summarize(res)
	assert.Zero(t, s.Buys)
	assert.Zero(t, s.MaxDrawdown)
	assert.Zero(t, s.MeanReturn)
	assert.Zero(t, s.StdReturn)
}

func TestSmoothedPNL(t *testing.T) {
	res := &backtest.Result{
		InitialCash: 100,
		Ledger: []backtest.LedgerRow{
			{AccountValue: 100},
			{AccountValue: 110},
			{AccountValue: 130},
			{AccountValue: 90},
		},
	}

	got := SmoothedPNL(res, 2)
	require.Len(t, got, 4)
	assert.InDeltaSlice(t, []float64{0, 5, 20, 10}, got, 1e-12)

	got = SmoothedPNL(res, 5)
	assert.InDeltaSlice(t, []float64{0, 5, 40.0 / 3, 7.5}, got, 1e-12)
}

func TestRankByPNL(t *testing.T) {
	results := map[string]*backtest.Result{
		"loser":  {TotalPNL: -10},
		"winner": {TotalPNL: 50},
		"b-flat": {TotalPNL: 0},
		"a-flat": {TotalPNL: 0},
	}
	ranked := RankByPNL(results)
	require.Len(t, ranked, 4)
	names := []string{ranked[0].Name, ranked[1].Name, ranked[2].Name, ranked[3].Name}
	assert.Equal(t, []string{"winner", "a-flat", "b-flat", "loser"}, names)
}
