package strategy

import "quantlab/internal/model"

// Position is the state carried across the simulation pass.
type Position struct {
	Cash   float64
	Shares int
}

// Apply executes sig at price and returns the new position.
// A buy always debits a full lot; a sell closes the whole position.
func (p Position) Apply(sig model.Signal, price float64, lot int) Position {
	switch sig {
	case model.SignalBuy:
		p.Shares += lot
		p.Cash -= price * float64(lot)
	case model.SignalSell:
		p.Cash += price * float64(p.Shares)
		p.Shares = 0
	}
	return p
}

// Value marks the position to market at price.
func (p Position) Value(price float64) float64 {
	return p.Cash + float64(p.Shares)*price
}
