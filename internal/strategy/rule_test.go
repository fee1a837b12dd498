package strategy

import (
	"testing"

	"quantlab/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDecide_Order(t *testing.T) {
	r := NewRule(DefaultParams())

	cases := []struct {
		name   string
		prices []float64
		i      int
		pos    Position
		want   Decision
	}{
		{"too early to buy", []float64{1, 2, 3}, 2, Position{}, Decision{model.SignalHold, ReasonNone}},
		{"rising run buys", []float64{1, 2, 3, 4}, 3, Position{}, Decision{model.SignalBuy, ReasonRisingRun}},
		{"rising run at cap holds", []float64{1, 2, 3, 4, 5}, 3, Position{Shares: 20}, Decision{model.SignalHold, ReasonNone}},
		{"falling run sells", []float64{5, 4, 3, 9}, 2, Position{Shares: 10}, Decision{model.SignalSell, ReasonFallingRun}},
		{"falling run flat holds", []float64{5, 4, 3, 9}, 2, Position{}, Decision{model.SignalHold, ReasonNone}},
		{"last index liquidates", []float64{1, 2, 3}, 2, Position{Shares: 10}, Decision{model.SignalSell, ReasonFinalExit}},
		{"last index flat holds", []float64{1, 2, 3}, 2, Position{}, Decision{model.SignalHold, ReasonNone}},
		{"falling run on last index is a rule sell", []float64{3, 2, 1}, 2, Position{Shares: 10}, Decision{model.SignalSell, ReasonFallingRun}},
		{"buy beats final exit", []float64{1, 2, 3, 4}, 3, Position{Shares: 10}, Decision{model.SignalBuy, ReasonRisingRun}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Decide(tc.prices, tc.i, tc.pos))
		})
	}
}

func TestRuns(t *testing.T) {
	assert.True(t, risingRun([]float64{1, 2, 3, 4}, 3, 4))
	assert.False(t, risingRun([]float64{1, 2, 2, 4}, 3, 4))
	assert.False(t, risingRun([]float64{1, 2, 3, 4}, 2, 4))
	assert.True(t, fallingRun([]float64{9, 3, 2, 1}, 3, 3))
	assert.False(t, fallingRun([]float64{3, 3, 1}, 2, 3))
}

func TestPositionApply(t *testing.T) {
	p := Position{Cash: 1000}

	p = p.Apply(model.SignalBuy, 10, 10)
	assert.Equal(t, Position{Cash: 900, Shares: 10}, p)
	assert.Equal(t, 1000.0, p.Value(10))

	p = p.Apply(model.SignalHold, 12, 10)
	assert.Equal(t, Position{Cash: 900, Shares: 10}, p)

	p = p.Apply(model.SignalSell, 12, 10)
	assert.Equal(t, Position{Cash: 1020, Shares: 0}, p)
}
