package model

import (
	"fmt"
	"math"
)

// PricePoint is one row of a daily closing-price series.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// PriceSeries is a chronologically ordered sequence of closes.
// Order matters: the trading rule looks back at the preceding values.
type PriceSeries []PricePoint

// Prices returns the close column.
func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}

// Validate checks the series is non-empty and every price is a finite number.
func (s PriceSeries) Validate() error {
	if len(s) == 0 {
		return ErrEmptySeries
	}
	for i, p := range s {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return fmt.Errorf("row %d (%s): price is not a finite number", i+1, p.Date)
		}
	}
	return nil
}

// SeriesFromPrices labels raw prices "Day 1", "Day 2", ...
func SeriesFromPrices(prices []float64) PriceSeries {
	out := make(PriceSeries, len(prices))
	for i, p := range prices {
		out[i] = PricePoint{Date: fmt.Sprintf("Day %d", i+1), Price: p}
	}
	return out
}
